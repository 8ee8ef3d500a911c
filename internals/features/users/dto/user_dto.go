// file: internals/features/users/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/users/model"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email atau user_name
	Password   string `json:"password"   validate:"required,min=8"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.ToLower(strings.TrimSpace(r.Identifier))
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type RegisterUserRequest struct {
	UserName  string     `json:"user_name" validate:"required,min=3,max=60"`
	Email     string     `json:"email"     validate:"required,email"`
	Password  string     `json:"password"  validate:"required,min=8"`
	Role      string     `json:"role"      validate:"required,oneof=admin staff teacher student"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	StudentID *uuid.UUID `json:"student_id"`
}

func (r *RegisterUserRequest) Normalize() {
	r.UserName = strings.ToLower(strings.TrimSpace(r.UserName))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserResponse struct {
	UserID   uuid.UUID         `json:"user_id"`
	UserName string            `json:"user_name"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	Profile  model.UserProfile `json:"profile"`
}

func NewUserResponse(u model.UserModel, profile model.UserProfile) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		UserName: u.UserName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		Profile:  profile,
	}
}
