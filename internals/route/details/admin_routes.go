package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "kampusku_backend/internals/features/academics/classes/route"
	subjectRoute "kampusku_backend/internals/features/academics/subjects/route"
	userRoute "kampusku_backend/internals/features/users/user/route"
)

// AdminRoutes: CRUD master data (mount di /api/a).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	classRoute.ClassAdminRoutes(r, db)
}
