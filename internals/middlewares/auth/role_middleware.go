package auth

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	helper "kampusku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles shortcut biar pemakaian lebih clean
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
