// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	peopleModel "sekolahku_backend/internals/features/school/people/model"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName     string `gorm:"type:varchar(60);not null;uniqueIndex;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`

	// akun guru/siswa menunjuk ke baris profilnya; admin/staff keduanya NULL
	UserTeacherID *uuid.UUID `gorm:"type:uuid;column:user_teacher_id" json:"user_teacher_id,omitempty"`
	UserStudentID *uuid.UUID `gorm:"type:uuid;column:user_student_id" json:"user_student_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

/* ===== Profil per peran ===== */

const (
	ProfileKindTeacher = "teacher"
	ProfileKindStudent = "student"
	ProfileKindStaff   = "staff"
)

// UserProfile: varian profil yang sudah diresolve sekali saat load.
// Hanya satu dari Teacher/Student yang terisi, sesuai Kind.
type UserProfile struct {
	Kind    string                    `json:"kind"`
	Teacher *peopleModel.TeacherModel `json:"teacher,omitempty"`
	Student *peopleModel.StudentModel `json:"student,omitempty"`
}

// ResolveProfile: muat profil sesuai peran user; admin/staff tidak punya
// baris profil terpisah.
func (u *UserModel) ResolveProfile(db *gorm.DB) (UserProfile, error) {
	switch {
	case u.UserTeacherID != nil:
		var teacher peopleModel.TeacherModel
		if err := db.First(&teacher, "teacher_id = ?", *u.UserTeacherID).Error; err != nil {
			return UserProfile{}, err
		}
		return UserProfile{Kind: ProfileKindTeacher, Teacher: &teacher}, nil
	case u.UserStudentID != nil:
		var student peopleModel.StudentModel
		if err := db.First(&student, "student_id = ?", *u.UserStudentID).Error; err != nil {
			return UserProfile{}, err
		}
		return UserProfile{Kind: ProfileKindStudent, Student: &student}, nil
	default:
		return UserProfile{Kind: ProfileKindStaff}, nil
	}
}
