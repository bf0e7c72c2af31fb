package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/apperr"
	userDTO "kampusku_backend/internals/features/users/user/dto"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// UserService: CRUD glue di atas tabel users. Semua kegagalan domain
// dikembalikan sebagai *apperr.Error, bukan fiber error.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetUserByID(id uuid.UUID) (*userModel.UserModel, *apperr.Error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeUserNotFound, "user's not found")
		}
		return nil, apperr.Internal(err.Error())
	}
	return &user, nil
}

func (s *UserService) GetUserByUsername(username string) (*userModel.UserModel, *apperr.Error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "user_name = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeUserNotFound, "user's not found")
		}
		return nil, apperr.Internal(err.Error())
	}
	return &user, nil
}

// UpdateUserMaster: lookup dulu supaya 404 konsisten, baru apply payload.
func (s *UserService) UpdateUserMaster(id uuid.UUID, req *userDTO.UpdateUserMasterRequest) (*userModel.UserModel, *apperr.Error) {
	user, aerr := s.GetUserByID(id)
	if aerr != nil {
		return nil, aerr
	}

	req.ApplyToModel(user)
	if err := s.DB.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.BadRequest(apperr.CodeUniqueConstraint, "email or username already used")
		}
		return nil, apperr.Internal(err.Error())
	}
	return user, nil
}

func (s *UserService) UpdateUserProfile(id uuid.UUID, req *userDTO.UpdateUserProfileRequest) (*userModel.UserModel, *apperr.Error) {
	user, aerr := s.GetUserByID(id)
	if aerr != nil {
		return nil, aerr
	}

	req.ApplyToModel(user)
	if err := s.DB.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.BadRequest(apperr.CodeUniqueConstraint, "email already used")
		}
		return nil, apperr.Internal(err.Error())
	}
	return user, nil
}

func (s *UserService) DeleteUserByID(id uuid.UUID) *apperr.Error {
	user, aerr := s.GetUserByID(id)
	if aerr != nil {
		return aerr
	}
	if err := s.DB.Delete(user).Error; err != nil {
		return apperr.Internal(err.Error())
	}
	return nil
}

// ListUsers: offset pagination + search (nama/username) + filter role.
func (s *UserService) ListUsers(search, role string, offset, limit int) ([]userModel.UserModel, int64, *apperr.Error) {
	tx := s.DB.Model(&userModel.UserModel{})

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("lower(full_name) LIKE ? OR lower(user_name) LIKE ?", like, like)
	}
	if role = strings.ToUpper(strings.TrimSpace(role)); role != "" {
		tx = tx.Where("role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err.Error())
	}

	var users []userModel.UserModel
	if err := tx.Order("created_at ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, apperr.Internal(err.Error())
	}
	return users, total, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
