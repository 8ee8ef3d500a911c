// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/users/dto"
	model "sekolahku_backend/internals/features/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ===============================
   LOGIN
   POST /auth/login
=================================*/
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("(user_email = ? OR user_name = ?) AND user_is_active = true", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan salah password: jangan bocorkan akun ada/tidak
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	profile, err := user.ResolveProfile(ctl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}

	token, err := ctl.issueToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user, profile),
	})
}

// claims dibaca kembali oleh AuthMiddleware; nama key harus sinkron dengannya
func (ctl *AuthController) issueToken(user model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if user.UserTeacherID != nil {
		claims["teacher_id"] = user.UserTeacherID.String()
	}
	if user.UserStudentID != nil {
		claims["student_id"] = user.UserStudentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

/* ===============================
   REGISTER (admin)
   POST /users
=================================*/
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Role == constants.RoleTeacher && req.TeacherID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Akun guru butuh teacher_id")
	}
	if req.Role == constants.RoleStudent && req.StudentID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Akun siswa butuh student_id")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:      req.UserName,
		UserEmail:     req.Email,
		UserPassword:  string(hash),
		UserRole:      req.Role,
		UserTeacherID: req.TeacherID,
		UserStudentID: req.StudentID,
		UserIsActive:  true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Username/email sudah terpakai")
	}

	profile, err := user.ResolveProfile(ctl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.NewUserResponse(user, profile))
}

/* ===============================
   ME
   GET /users/me
=================================*/
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals(helperAuth.LocUserID).(string)
	if !ok || userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	profile, err := user.ResolveProfile(ctl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}
	return helper.JsonOK(c, "OK", dto.NewUserResponse(user, profile))
}
