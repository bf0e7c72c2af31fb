package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "kampusku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(h.DB, c)
}

// POST /api/auth/refresh-token
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(h.DB, c)
}

// POST /api/u/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(h.DB, c)
}

// PUT /api/u/auth/change-password
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(h.DB, c)
}
