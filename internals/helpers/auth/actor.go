// file: internals/helpers/auth/actor.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Kunci locals yang diisi middleware auth (HARUS dari middleware verifikasi JWT)
const (
	LocUserID    = "user_id"
	LocRole      = "role"
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
	LocUserName  = "user_name"
)

// Actor = identitas pengguna aktif untuk satu request.
// Dipakai eksplisit oleh resolver & engine — tidak ada state global.
type Actor struct {
	UserID    uuid.UUID
	Role      string
	UserName  string
	TeacherID *uuid.UUID // terisi hanya untuk role teacher
	StudentID *uuid.UUID // terisi hanya untuk role student
}

func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }

// IsPrivileged: admin/staff lolos semua pemeriksaan akses
func (a Actor) IsPrivileged() bool { return constants.IsPrivilegedRole(a.Role) }

// ActorFromLocals membaca identitas dari fiber locals hasil middleware JWT.
func ActorFromLocals(c *fiber.Ctx) (Actor, error) {
	var a Actor

	rawID, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil || id == uuid.Nil {
		return a, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	a.UserID = id

	role, _ := c.Locals(LocRole).(string)
	a.Role = strings.ToLower(strings.TrimSpace(role))
	if a.Role == "" {
		return a, fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
	}

	if name, ok := c.Locals(LocUserName).(string); ok {
		a.UserName = strings.TrimSpace(name)
	}

	if s, ok := c.Locals(LocTeacherID).(string); ok {
		if tid, err := uuid.Parse(strings.TrimSpace(s)); err == nil && tid != uuid.Nil {
			a.TeacherID = &tid
		}
	}
	if s, ok := c.Locals(LocStudentID).(string); ok {
		if sid, err := uuid.Parse(strings.TrimSpace(s)); err == nil && sid != uuid.Nil {
			a.StudentID = &sid
		}
	}

	// Guru tanpa profil guru = token rusak / data belum lengkap
	if a.Role == constants.RoleTeacher && a.TeacherID == nil {
		return a, fiber.NewError(fiber.StatusUnauthorized, "teacher_id tidak ditemukan di token")
	}

	return a, nil
}
