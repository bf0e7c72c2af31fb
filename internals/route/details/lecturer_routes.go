package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wlRoute "kampusku_backend/internals/features/academics/waitinglist/route"
)

// LecturerRoutes: endpoint khusus lecturer (mount di /api/l; admin ikut lolos
// lewat role gate-nya).
func LecturerRoutes(r fiber.Router, db *gorm.DB) {
	wlRoute.WaitingListLecturerRoutes(r, db)
}
