package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "kampusku_backend/internals/features/academics/subjects/controller"
)

// SubjectUserRoutes: read-only (mount di /api/u)
func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.GetAllSubjects)   // GET /api/u/subjects
	subjects.Get("/:id", ctl.GetSubjectByID) // GET /api/u/subjects/:id
}

// SubjectAdminRoutes: full CRUD (mount di /api/a)
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.CreateSubject)      // POST   /api/a/subjects
	subjects.Put("/:id", ctl.UpdateSubject)    // PUT    /api/a/subjects/:id
	subjects.Delete("/:id", ctl.DeleteSubject) // DELETE /api/a/subjects/:id
}
