package model

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string         `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName  string         `gorm:"size:120;not null" json:"full_name" validate:"required,min=1,max=120"`
	Email     string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string         `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      constants.Role `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=STUDENT LECTURER ADMIN"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
