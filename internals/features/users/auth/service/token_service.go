// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authRepo "kampusku_backend/internals/features/users/auth/repository"
	helper "kampusku_backend/internals/helpers"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token — rotasi: refresh lama hangus, pasangan baru keluar.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := computeRefreshHash(raw)
	known, err := authRepo.RefreshTokenHashExists(db, hash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !known {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// ROTATE: hapus refresh lama sebelum keluarkan pasangan baru.
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[WARN] gagal hapus refresh token lama: %v", err)
	}

	access, accessExp, err := issueAccessToken(user.ID.String(), user.UserName, user.Role.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, refreshExp, err := issueRefreshToken(db, user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	setRefreshCookie(c, refresh, refreshExp)

	return helper.JsonOK(c, "token refreshed", fiber.Map{
		"access_token":  access,
		"expired_at":    accessExp.Format(time.RFC3339),
		"refresh_token": refresh,
	})
}

/* ====================== REFRESH HELPERS ====================== */

func issueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(refreshTokenTTL)
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	if err := authRepo.SaveRefreshToken(db, userID, computeRefreshHash(signed), expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// computeRefreshHash: HMAC-SHA256 atas token, di-key refresh secret, supaya
// DB tidak pernah pegang plaintext.
func computeRefreshHash(raw string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

func setRefreshCookie(c *fiber.Ctx, refresh string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}
