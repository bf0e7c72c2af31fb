// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authRepo "kampusku_backend/internals/features/users/auth/repository"
	userDTO "kampusku_backend/internals/features/users/user/dto"
	helper "kampusku_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // email atau username
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	input.Identifier = strings.TrimSpace(input.Identifier)
	if input.Identifier == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifier dan password wajib diisi")
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, expiredAt, err := issueAccessToken(user.ID.String(), user.UserName, user.Role.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, refreshExp, err := issueRefreshToken(db, user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	setRefreshCookie(c, refresh, refreshExp)

	return helper.JsonOK(c, "login success", fiber.Map{
		"access_token":  token,
		"expired_at":    expiredAt.Format(time.RFC3339),
		"refresh_token": refresh,
		"user":          userDTO.FromUserModel(*user),
	})
}

// ========================== LOGOUT ==========================
// POST /api/u/auth/logout — token yang dipakai masuk blacklist sampai exp-nya.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}

	expiredAt := time.Now().Add(accessTokenTTL)
	if claims := parseClaimsUnverified(raw); claims != nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := authRepo.BlacklistToken(db, raw, expiredAt); err != nil {
		// token sudah pernah di-blacklist → tetap sukses secara efek
		if !strings.Contains(strings.ToLower(err.Error()), "unique") &&
			!strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to blacklist token")
		}
	}

	// Refresh token ikut hangus supaya sesi tidak bisa dihidupkan lagi.
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if err := authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(refresh)); err != nil {
			log.Printf("[WARN] gagal hapus refresh token saat logout: %v", err)
		}
		c.ClearCookie("refresh_token")
	}
	return helper.JsonOK(c, "logout success", nil)
}

/* ====================== TOKEN HELPERS ====================== */

func issueAccessToken(userID, userName, role string) (string, time.Time, error) {
	expiredAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"id":        userID,
		"user_name": userName,
		"role":      role,
		"iat":       time.Now().Unix(),
		"exp":       expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	return signed, expiredAt, err
}

func parseClaimsUnverified(raw string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil
	}
	return claims
}
