// internals/features/academics/classes/service/class_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/apperr"
	"kampusku_backend/internals/constants"
	classDTO "kampusku_backend/internals/features/academics/classes/dto"
	classModel "kampusku_backend/internals/features/academics/classes/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

type ClassService struct {
	DB *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{DB: db}
}

func (s *ClassService) GetClassByID(id uuid.UUID) (*classModel.ClassModel, *apperr.Error) {
	var cls classModel.ClassModel
	if err := s.DB.First(&cls, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeCommonNotFound, "class's not found")
		}
		return nil, apperr.Internal(err.Error())
	}
	return &cls, nil
}

// GetMembersOfClass: roster kelas, hanya untuk member kelas itu sendiri.
func (s *ClassService) GetMembersOfClass(callerID, classID uuid.UUID) ([]classModel.ClassUserModel, *apperr.Error) {
	if _, aerr := s.GetClassByID(classID); aerr != nil {
		return nil, aerr
	}

	var members []classModel.ClassUserModel
	if err := s.DB.Preload("User").
		Where("class_user_class_id = ?", classID).
		Order("class_user_created_at ASC").
		Find(&members).Error; err != nil {
		return nil, apperr.Internal(err.Error())
	}

	isMember := false
	for _, mrow := range members {
		if mrow.ClassUserUserID == callerID {
			isMember = true
			break
		}
	}
	if !isMember {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "this class's not for you")
	}
	return members, nil
}

// AssignLecturers: hanya user dengan role LECTURER yang masuk roster;
// id lain di payload diabaikan diam-diam (perilaku lama dipertahankan).
func (s *ClassService) AssignLecturers(classID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, *apperr.Error) {
	if _, aerr := s.GetClassByID(classID); aerr != nil {
		return nil, aerr
	}

	allowed := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		var u userModel.UserModel
		if err := s.DB.Select("id", "role").First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperr.Internal(err.Error())
		}
		if u.Role == constants.RoleLecturer {
			allowed = append(allowed, id)
		}
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range allowed {
			row := classModel.ClassUserModel{
				ClassUserClassID: classID,
				ClassUserUserID:  id,
			}
			if err := tx.Create(&row).Error; err != nil {
				// sudah jadi member → lewati
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					continue
				}
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, apperr.Internal(err.Error())
	}
	return allowed, nil
}

func (s *ClassService) CreateClass(req *classDTO.CreateClassRequest) (*classModel.ClassModel, *apperr.Error) {
	cls, err := req.ToModel()
	if err != nil {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "invalid schedule payload")
	}
	cls.ClassID = uuid.New()
	if err := s.DB.Create(cls).Error; err != nil {
		return nil, apperr.Internal(err.Error())
	}
	return cls, nil
}

func (s *ClassService) EditClass(id uuid.UUID, req *classDTO.UpdateClassRequest) (*classModel.ClassModel, *apperr.Error) {
	cls, aerr := s.GetClassByID(id)
	if aerr != nil {
		return nil, aerr
	}
	if err := req.ApplyToModel(cls); err != nil {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "invalid schedule payload")
	}
	if err := s.DB.Save(cls).Error; err != nil {
		return nil, apperr.Internal(err.Error())
	}
	return cls, nil
}

func (s *ClassService) DeleteClass(id uuid.UUID) *apperr.Error {
	cls, aerr := s.GetClassByID(id)
	if aerr != nil {
		return aerr
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_user_class_id = ?", id).Delete(&classModel.ClassUserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(cls).Error
	}); err != nil {
		return apperr.Internal(err.Error())
	}
	return nil
}

// ListClasses: filter opsional subject dan/atau member user.
func (s *ClassService) ListClasses(subjectID, memberID *uuid.UUID, offset, limit int) ([]classModel.ClassModel, int64, *apperr.Error) {
	tx := s.DB.Model(&classModel.ClassModel{})
	if subjectID != nil {
		tx = tx.Where("class_subject_id = ?", *subjectID)
	}
	if memberID != nil {
		tx = tx.Joins("JOIN class_users ON class_users.class_user_class_id = classes.class_id").
			Where("class_users.class_user_user_id = ?", *memberID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err.Error())
	}

	var classes []classModel.ClassModel
	if err := tx.Order("class_created_at ASC").Offset(offset).Limit(limit).Find(&classes).Error; err != nil {
		return nil, 0, apperr.Internal(err.Error())
	}
	return classes, total, nil
}

// SchedulesByDay: jadwal kelas milik user pada hari `date`.
// Hari dicocokkan terhadap class_days (text[]), detail dari class_schedule.
func (s *ClassService) SchedulesByDay(userID uuid.UUID, date time.Time) ([]classDTO.DayScheduleResponse, *apperr.Error) {
	day := strings.ToUpper(date.Weekday().String())

	var classes []classModel.ClassModel
	if err := s.DB.Model(&classModel.ClassModel{}).
		Joins("JOIN class_users ON class_users.class_user_class_id = classes.class_id").
		Where("class_users.class_user_user_id = ? AND ? = ANY(classes.class_days)", userID, day).
		Find(&classes).Error; err != nil {
		return nil, apperr.Internal(err.Error())
	}

	out := make([]classDTO.DayScheduleResponse, 0, len(classes))
	for _, cls := range classes {
		items, err := classDTO.UnmarshalSchedule(cls.ClassSchedule)
		if err != nil {
			return nil, apperr.Internal("corrupt class schedule for class " + cls.ClassID.String())
		}
		meetings := make([]classDTO.ScheduleItem, 0, len(items))
		for _, it := range items {
			if strings.EqualFold(it.Day, day) {
				meetings = append(meetings, it)
			}
		}
		if len(meetings) > 0 {
			out = append(out, classDTO.DayScheduleResponse{
				ClassID:   cls.ClassID,
				ClassName: cls.ClassName,
				Meetings:  meetings,
			})
		}
	}
	return out, nil
}
