package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "kampusku_backend/internals/features/academics/classes/controller"
)

// ClassUserRoutes: read + jadwal (mount di /api/u)
func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/", ctl.GetAllClasses)              // GET /api/u/classes
	classes.Get("/mine", ctl.GetMyClasses)           // GET /api/u/classes/mine
	classes.Get("/schedules", ctl.GetMySchedulesByDay) // GET /api/u/classes/schedules
	classes.Get("/:id", ctl.GetClassByID)            // GET /api/u/classes/:id
	classes.Get("/:id/members", ctl.GetClassMembers) // GET /api/u/classes/:id/members
}

// ClassAdminRoutes: full CRUD + penugasan lecturer (mount di /api/a)
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctl.CreateClass)                 // POST   /api/a/classes
	classes.Put("/:id", ctl.UpdateClass)               // PUT    /api/a/classes/:id
	classes.Put("/:id/lecturers", ctl.AssignLecturers) // PUT    /api/a/classes/:id/lecturers
	classes.Delete("/:id", ctl.DeleteClass)            // DELETE /api/a/classes/:id
}
