// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashedPassword string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

/* ====================== TOKEN BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

/* ====================== REFRESH TOKEN ====================== */

func SaveRefreshToken(db *gorm.DB, userID uuid.UUID, tokenHash []byte, expiresAt time.Time) error {
	return db.Create(&authModel.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}).Error
}

func RefreshTokenHashExists(db *gorm.DB, tokenHash []byte) (bool, error) {
	var count int64
	err := db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND expires_at > NOW()", tokenHash).
		Count(&count).Error
	return count > 0, err
}

func DeleteRefreshTokenByHash(db *gorm.DB, tokenHash []byte) error {
	return db.Delete(&authModel.RefreshToken{}, "token_hash = ?", tokenHash).Error
}
