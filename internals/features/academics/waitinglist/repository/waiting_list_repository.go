// internals/features/academics/waitinglist/repository/waiting_list_repository.go
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kampusku_backend/internals/features/academics/classes/model"
	"kampusku_backend/internals/features/academics/waitinglist/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// WaitingListRepository: implementasi GORM untuk service.Store.
type WaitingListRepository struct {
	DB *gorm.DB
}

func NewWaitingListRepository(db *gorm.DB) *WaitingListRepository {
	return &WaitingListRepository{DB: db}
}

func (r *WaitingListRepository) FindUserByID(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *WaitingListRepository) FindEntryByUserAndClass(userID, classID uuid.UUID) (*model.StudentWaitingListModel, error) {
	var entry model.StudentWaitingListModel
	err := r.DB.
		Where("waiting_list_user_id = ? AND waiting_list_class_id = ?", userID, classID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaitingListRepository) FindEntryByID(entryID uuid.UUID) (*model.StudentWaitingListModel, error) {
	var entry model.StudentWaitingListModel
	err := r.DB.
		Preload("User").
		First(&entry, "waiting_list_id = ?", entryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaitingListRepository) CreateEntry(entry *model.StudentWaitingListModel) error {
	return r.DB.Create(entry).Error
}

func (r *WaitingListRepository) DeleteEntry(entryID uuid.UUID) error {
	return r.DB.
		Delete(&model.StudentWaitingListModel{}, "waiting_list_id = ?", entryID).Error
}

func (r *WaitingListRepository) IsClassMember(classID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.Model(&classModel.ClassUserModel{}).
		Where("class_user_class_id = ? AND class_user_user_id = ?", classID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ApplyDecision: update status + (kalau accept) insert roster, satu transaksi.
// Guard "masih PENDING" ikut di klausa WHERE supaya dua keputusan paralel
// tidak saling timpa.
func (r *WaitingListRepository) ApplyDecision(entry *model.StudentWaitingListModel, status model.AcceptanceStatus, enroll bool) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.StudentWaitingListModel{}).
			Where("waiting_list_id = ? AND waiting_list_status = ?", entry.WaitingListID, model.StatusPending).
			Update("waiting_list_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if enroll {
			member := classModel.ClassUserModel{
				ClassUserClassID: entry.WaitingListClassID,
				ClassUserUserID:  entry.WaitingListUserID,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	entry.WaitingListStatus = status
	return nil
}

func (r *WaitingListRepository) ListEntriesByClass(classID uuid.UUID, status string) ([]model.StudentWaitingListModel, error) {
	q := r.DB.
		Preload("User").
		Where("waiting_list_class_id = ?", classID).
		Order("waiting_list_created_at ASC")
	if status != "" {
		// Exact match: nilai yang bukan status dikenal memang tidak match.
		q = q.Where("waiting_list_status = ?", status)
	}

	var entries []model.StudentWaitingListModel
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
