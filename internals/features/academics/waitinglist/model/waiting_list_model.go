// internals/features/academics/waitinglist/model/waiting_list_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "kampusku_backend/internals/features/users/user/model"
)

// AcceptanceStatus: status sebuah request di waiting list. Tipe tertutup,
// transisi hanya lewat service.
type AcceptanceStatus string

const (
	StatusPending  AcceptanceStatus = "PENDING"
	StatusAccepted AcceptanceStatus = "ACCEPTED"
	StatusRejected AcceptanceStatus = "REJECTED"
)

func (s AcceptanceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal: ACCEPTED dan REJECTED final untuk student; hanya PENDING yang
// masih bisa dibatalkan atau diputuskan.
func (s AcceptanceStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s AcceptanceStatus) String() string { return string(s) }

// StudentWaitingListModel: request student masuk ke sebuah kelas.
// Satu request aktif per pasangan (user, class) — dijaga index unik komposit.
type StudentWaitingListModel struct {
	WaitingListID      uuid.UUID        `gorm:"column:waiting_list_id;type:uuid;default:gen_random_uuid();primaryKey" json:"waiting_list_id"`
	WaitingListUserID  uuid.UUID        `gorm:"column:waiting_list_user_id;type:uuid;not null;uniqueIndex:uq_waiting_list_user_class" json:"waiting_list_user_id"`
	WaitingListClassID uuid.UUID        `gorm:"column:waiting_list_class_id;type:uuid;not null;uniqueIndex:uq_waiting_list_user_class" json:"waiting_list_class_id"`
	WaitingListStatus  AcceptanceStatus `gorm:"column:waiting_list_status;type:varchar(10);not null;default:'PENDING'" json:"waiting_list_status"`

	WaitingListCreatedAt time.Time `gorm:"column:waiting_list_created_at;not null;autoCreateTime" json:"waiting_list_created_at"`

	User *userModel.UserModel `gorm:"foreignKey:WaitingListUserID;references:ID" json:"user,omitempty"`
}

func (StudentWaitingListModel) TableName() string { return "student_class_waiting_list" }
