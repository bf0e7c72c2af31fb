package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
	m "kampusku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=STUDENT LECTURER ADMIN"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *m.UserModel {
	return &m.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     constants.Role(r.Role),
		IsActive: true,
	}
}

// UpdateUserMasterRequest dipakai admin untuk ubah master data user.
type UpdateUserMasterRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=STUDENT LECTURER ADMIN"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateUserMasterRequest) ApplyToModel(u *m.UserModel) {
	if r.FullName != nil {
		u.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		u.Role = constants.Role(strings.ToUpper(strings.TrimSpace(*r.Role)))
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

// UpdateUserProfileRequest dipakai user untuk ubah profilnya sendiri.
type UpdateUserProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (r *UpdateUserProfileRequest) ApplyToModel(u *m.UserModel) {
	if r.FullName != nil {
		u.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
}

/* ===================== QUERIES ===================== */

type ListUserQuery struct {
	Search string `query:"search"`
	Role   string `query:"role"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserName  string         `json:"user_name"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Role      constants.Role `json:"role"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(us []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUserModel(u))
	}
	return out
}
