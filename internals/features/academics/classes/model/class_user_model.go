// internals/features/academics/classes/model/class_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "kampusku_backend/internals/features/users/user/model"
)

// ClassUserModel: roster kelas (lecturer yang ditugaskan + student yang
// diterima dari waiting list). Satu user satu baris per kelas.
type ClassUserModel struct {
	ClassUserID      uuid.UUID `gorm:"column:class_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_user_id"`
	ClassUserClassID uuid.UUID `gorm:"column:class_user_class_id;type:uuid;not null;uniqueIndex:uq_class_users_class_user" json:"class_user_class_id"`
	ClassUserUserID  uuid.UUID `gorm:"column:class_user_user_id;type:uuid;not null;uniqueIndex:uq_class_users_class_user" json:"class_user_user_id"`

	ClassUserCreatedAt time.Time `gorm:"column:class_user_created_at;not null;autoCreateTime" json:"class_user_created_at"`

	User *userModel.UserModel `gorm:"foreignKey:ClassUserUserID;references:ID" json:"user,omitempty"`
}

func (ClassUserModel) TableName() string { return "class_users" }
