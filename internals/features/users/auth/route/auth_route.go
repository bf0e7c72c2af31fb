package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kampusku_backend/internals/features/users/auth/controller"
	middlewares "kampusku_backend/internals/middlewares"
)

// AuthPublicRoutes: mount di /api/auth (tanpa JWT)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/refresh-token", middlewares.RefreshRateLimiter(), ctl.RefreshToken)
}

// AuthUserRoutes: mount di /api/u/auth (dengan JWT)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Put("/change-password", ctl.ChangePassword)
}
