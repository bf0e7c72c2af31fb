// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kampusku_backend/internals/features/users/user/controller"
)

// UserUserRoutes: route untuk user login biasa (mount di /api/u)
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.GetMyProfile)   // GET /api/u/users/me
	users.Put("/me", ctl.UpdateMyProfile) // PUT /api/u/users/me
}

// UserAdminRoutes: full CRUD (mount di /api/a)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", ctl.CreateUser)        // POST   /api/a/users
	users.Get("/", ctl.GetAllUsers)        // GET    /api/a/users
	users.Get("/by-username/:username", ctl.GetUserByUsername) // GET /api/a/users/by-username/:username
	users.Get("/:id", ctl.GetUserByID)     // GET    /api/a/users/:id
	users.Put("/:id", ctl.UpdateUserByID)  // PUT    /api/a/users/:id
	users.Delete("/:id", ctl.DeleteUserByID) // DELETE /api/a/users/:id
}
