package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "kampusku_backend/internals/features/academics/classes/route"
	subjectRoute "kampusku_backend/internals/features/academics/subjects/route"
	wlRoute "kampusku_backend/internals/features/academics/waitinglist/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	userRoute "kampusku_backend/internals/features/users/user/route"
)

// UserRoutes: semua endpoint untuk user login biasa (mount di /api/u).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(r, db)
	userRoute.UserUserRoutes(r, db)
	subjectRoute.SubjectUserRoutes(r, db)
	classRoute.ClassUserRoutes(r, db)
	wlRoute.WaitingListUserRoutes(r, db)
}
