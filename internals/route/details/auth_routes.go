package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "kampusku_backend/internals/features/users/auth/route"
)

// AuthPublicRoutes: endpoint tanpa JWT (mount di /api/auth).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(r, db)
}
