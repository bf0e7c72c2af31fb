// internals/features/academics/waitinglist/dto/waiting_list_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/waitinglist/model"
)

// =========================
// Request
// =========================

// ClassRegistrationRequest: satu endpoint untuk daftar & batal (mengikuti
// bentuk request aslinya: is_cancelled memilih jalurnya).
type ClassRegistrationRequest struct {
	ClassID     string `json:"class_id" validate:"required,uuid"`
	IsCancelled bool   `json:"is_cancelled"`
}

func (r *ClassRegistrationRequest) Normalize() {
	r.ClassID = strings.TrimSpace(r.ClassID)
}

// WaitingListDecisionRequest: keputusan lecturer atas satu entry PENDING.
// Pointer supaya "false" tetap lolos required.
type WaitingListDecisionRequest struct {
	IsAccepted *bool `json:"is_accepted" validate:"required"`
}

// ListWaitingListQuery: filter opsional untuk daftar per kelas.
type ListWaitingListQuery struct {
	Status string `query:"status"`
}

// =========================
// Response
// =========================

// StudentWaitingListItem: proyeksi untuk lecturer; identitas student diambil
// dari relasi User (student_id = username).
type StudentWaitingListItem struct {
	Fullname  string                 `json:"fullname"`
	StudentID string                 `json:"student_id"`
	UserID    uuid.UUID              `json:"user_id"`
	Status    model.AcceptanceStatus `json:"status"`
	ID        uuid.UUID              `json:"id"`
}

// FromWaitingListModel mengasumsikan m.User sudah ter-preload; service yang
// menjaga kontrak itu.
func FromWaitingListModel(m model.StudentWaitingListModel) StudentWaitingListItem {
	item := StudentWaitingListItem{
		UserID: m.WaitingListUserID,
		Status: m.WaitingListStatus,
		ID:     m.WaitingListID,
	}
	if m.User != nil {
		item.Fullname = m.User.FullName
		item.StudentID = m.User.UserName
	}
	return item
}

// WaitingListEntryResponse: bentuk entry untuk si student sendiri.
type WaitingListEntryResponse struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	ClassID   uuid.UUID              `json:"class_id"`
	Status    model.AcceptanceStatus `json:"status"`
	CreatedAt string                 `json:"created_at"`
}

func FromWaitingListEntry(m model.StudentWaitingListModel) WaitingListEntryResponse {
	return WaitingListEntryResponse{
		ID:        m.WaitingListID,
		UserID:    m.WaitingListUserID,
		ClassID:   m.WaitingListClassID,
		Status:    m.WaitingListStatus,
		CreatedAt: m.WaitingListCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
