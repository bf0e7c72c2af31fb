package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	middlewares "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
	routeDetails "kampusku_backend/internals/route/details"
)

// SetupRoutes memasang semua route dengan 4 tingkat akses:
//
//	/api/auth — publik (login)
//	/api/u    — semua user login
//	/api/l    — lecturer & admin
//	/api/a    — admin saja
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group (/api/auth)...")
	public := api.Group("/auth")
	routeDetails.AuthPublicRoutes(public, db)

	// ===================== USER =====================
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(user, db)

	// ===================== LECTURER =====================
	log.Println("[INFO] Setting up LECTURER group (/api/l)...")
	lecturer := api.Group("/l",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyLecturersCanAccess, constants.LecturerAndAbove...),
	)
	routeDetails.LecturerRoutes(lecturer, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...),
	)
	routeDetails.AdminRoutes(admin, db)
}
