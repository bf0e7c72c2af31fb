package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wlController "kampusku_backend/internals/features/academics/waitinglist/controller"
)

// WaitingListUserRoutes: sisi student (mount di /api/u).
func WaitingListUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := wlController.NewWaitingListController(db)

	r.Post("/classes/registration", ctl.RegisterOrCancel) // POST /api/u/classes/registration
}

// WaitingListLecturerRoutes: sisi lecturer (mount di /api/l).
func WaitingListLecturerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := wlController.NewWaitingListController(db)

	r.Get("/classes/:id/waiting-list", ctl.GetWaitingListByClass) // GET /api/l/classes/:id/waiting-list
	r.Put("/waiting-list/:id", ctl.DecideWaitingListEntry)        // PUT /api/l/waiting-list/:id
}
