// internals/features/academics/waitinglist/service/waiting_list_service.go
package service

import (
	"strings"

	"github.com/google/uuid"

	"kampusku_backend/internals/apperr"
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/waitinglist/dto"
	"kampusku_backend/internals/features/academics/waitinglist/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// Store: akses data yang dibutuhkan state machine waiting list. Dibuat
// interface supaya service bisa diuji tanpa DB; implementasi GORM ada di
// package repository.
//
// Konvensi: lookup yang tidak menemukan baris mengembalikan (nil, nil),
// error hanya untuk kegagalan store.
type Store interface {
	FindUserByID(id uuid.UUID) (*userModel.UserModel, error)
	FindEntryByUserAndClass(userID, classID uuid.UUID) (*model.StudentWaitingListModel, error)
	// FindEntryByID ikut memuat relasi User.
	FindEntryByID(entryID uuid.UUID) (*model.StudentWaitingListModel, error)
	CreateEntry(entry *model.StudentWaitingListModel) error
	DeleteEntry(entryID uuid.UUID) error
	// IsClassMember: apakah user ada di roster class_users kelas tsb.
	IsClassMember(classID, userID uuid.UUID) (bool, error)
	// ApplyDecision menulis status terminal; kalau enroll true, insert student
	// ke roster kelas dalam transaksi yang sama.
	ApplyDecision(entry *model.StudentWaitingListModel, status model.AcceptanceStatus, enroll bool) error
	// ListEntriesByClass: urutan insert (created_at), relasi User ter-preload.
	// Filter status exact match; string kosong = semua.
	ListEntriesByClass(classID uuid.UUID, status string) ([]model.StudentWaitingListModel, error)
}

type WaitingListService struct {
	Store Store
}

func NewWaitingListService(store Store) *WaitingListService {
	return &WaitingListService{Store: store}
}

// RegisterOrCancel: satu operasi dua jalur, mengikuti bentuk request-nya.
// isCancelled=false mendaftarkan caller ke waiting list kelas (PENDING),
// isCancelled=true membatalkan request PENDING miliknya (hard delete).
// Ownership implisit: lookup selalu pakai callerID.
func (s *WaitingListService) RegisterOrCancel(callerID, classID uuid.UUID, isCancelled bool) (*model.StudentWaitingListModel, *apperr.Error) {
	caller, err := s.Store.FindUserByID(callerID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if caller == nil {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "user's not found")
	}
	if caller.Role != constants.RoleStudent {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "user's not student")
	}

	if isCancelled {
		return nil, s.cancel(callerID, classID)
	}
	return s.register(callerID, classID)
}

func (s *WaitingListService) register(callerID, classID uuid.UUID) (*model.StudentWaitingListModel, *apperr.Error) {
	existing, err := s.Store.FindEntryByUserAndClass(callerID, classID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if existing != nil {
		return nil, apperr.BadRequest(apperr.CodeUniqueConstraint, "you have already requested to this class")
	}

	entry := &model.StudentWaitingListModel{
		WaitingListID:      uuid.New(),
		WaitingListUserID:  callerID,
		WaitingListClassID: classID,
		WaitingListStatus:  model.StatusPending,
	}
	if err := s.Store.CreateEntry(entry); err != nil {
		// Pre-check di atas bisa balapan dengan request paralel; index unik
		// (user_id, class_id) yang jadi penjaga terakhirnya.
		if isUniqueViolation(err) {
			return nil, apperr.BadRequest(apperr.CodeUniqueConstraint, "you have already requested to this class")
		}
		return nil, apperr.Internal(err.Error())
	}
	return entry, nil
}

func (s *WaitingListService) cancel(callerID, classID uuid.UUID) *apperr.Error {
	entry, err := s.Store.FindEntryByUserAndClass(callerID, classID)
	if err != nil {
		return apperr.Internal(err.Error())
	}
	if entry == nil {
		return apperr.NotFound(apperr.CodeCommonNotFound, "you don't request to this class")
	}
	if entry.WaitingListStatus != model.StatusPending {
		return apperr.BadRequest(apperr.CodeBadRequest, "request has been accepted cannot cancel")
	}
	if err := s.Store.DeleteEntry(entry.WaitingListID); err != nil {
		return apperr.Internal(err.Error())
	}
	return nil
}

// Decide: transisi PENDING -> ACCEPTED|REJECTED oleh lecturer yang ditugaskan
// di kelas entry tsb. Accept sekaligus memasukkan student ke roster.
// Status terminal tidak pernah transisi lagi.
func (s *WaitingListService) Decide(lecturerID, entryID uuid.UUID, accept bool) (*model.StudentWaitingListModel, *apperr.Error) {
	caller, err := s.Store.FindUserByID(lecturerID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if caller == nil {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "user's not found")
	}
	if caller.Role != constants.RoleLecturer {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "user's not lecturer")
	}

	entry, err := s.Store.FindEntryByID(entryID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if entry == nil {
		return nil, apperr.NotFound(apperr.CodeCommonNotFound, "waiting list request's not found")
	}

	assigned, err := s.Store.IsClassMember(entry.WaitingListClassID, lecturerID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if !assigned {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "this class's not for you")
	}

	if entry.WaitingListStatus != model.StatusPending {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "request has been decided")
	}

	status := model.StatusRejected
	if accept {
		status = model.StatusAccepted
	}
	if err := s.Store.ApplyDecision(entry, status, accept); err != nil {
		if isUniqueViolation(err) {
			// Student sudah ada di roster (mis. dimasukkan manual oleh admin).
			return nil, apperr.BadRequest(apperr.CodeUniqueConstraint, "student already enrolled to this class")
		}
		return nil, apperr.Internal(err.Error())
	}
	return entry, nil
}

// ListForLecturer: daftar request sebuah kelas untuk lecturer yang ditugaskan
// di kelas itu. statusFilter kosong = semua; nilai yang bukan status dikenal
// memang tidak match apa-apa. Hasil kosong bukan error.
func (s *WaitingListService) ListForLecturer(lecturerID, classID uuid.UUID, statusFilter string) ([]dto.StudentWaitingListItem, *apperr.Error) {
	assigned, err := s.Store.IsClassMember(classID, lecturerID)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	if !assigned {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "this class's not for you")
	}

	entries, err := s.Store.ListEntriesByClass(classID, strings.TrimSpace(statusFilter))
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	items := make([]dto.StudentWaitingListItem, 0, len(entries))
	for _, e := range entries {
		if e.User == nil {
			// Entry tanpa user berarti datanya rusak, bukan kondisi bisnis.
			return nil, apperr.Internal("waiting list entry has no user attached")
		}
		items = append(items, dto.FromWaitingListModel(e))
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
