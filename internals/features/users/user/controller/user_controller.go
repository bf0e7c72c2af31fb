package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/apperr"
	userDTO "kampusku_backend/internals/features/users/user/dto"
	userService "kampusku_backend/internals/features/users/user/service"
	helper "kampusku_backend/internals/helpers"
)

type UserController struct {
	DB      *gorm.DB
	Service *userService.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:      db,
		Service: userService.NewUserService(db),
	}
}

var validateUser = validator.New()

// POST /api/a/users
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonAppError(c, apperr.BadRequest(apperr.CodeUniqueConstraint, "email or username already used"))
	}
	return helper.JsonCreated(c, "user created", userDTO.FromUserModel(*m))
}

// GET /api/a/users/:id
func (h *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	user, aerr := h.Service.GetUserByID(id)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonOK(c, "ok", userDTO.FromUserModel(*user))
}

// GET /api/a/users/by-username/:username
func (h *UserController) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username tidak valid")
	}
	user, aerr := h.Service.GetUserByUsername(username)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonOK(c, "ok", userDTO.FromUserModel(*user))
}

// GET /api/u/users/me
func (h *UserController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, aerr := h.Service.GetUserByID(userID)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonOK(c, "ok", userDTO.FromUserModel(*user))
}

// PUT /api/u/users/me
func (h *UserController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req userDTO.UpdateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	user, aerr := h.Service.UpdateUserProfile(userID, &req)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonUpdated(c, "successfully update user profile", userDTO.FromUserModel(*user))
}

// PUT /api/a/users/:id
func (h *UserController) UpdateUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req userDTO.UpdateUserMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	user, aerr := h.Service.UpdateUserMaster(id, &req)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonUpdated(c, "successfully update user profile", userDTO.FromUserModel(*user))
}

// DELETE /api/a/users/:id
func (h *UserController) DeleteUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if aerr := h.Service.DeleteUserByID(id); aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonDeleted(c, "deleted user", nil)
}

// GET /api/a/users?search=&role=&page=&per_page=
func (h *UserController) GetAllUsers(c *fiber.Ctx) error {
	var q userDTO.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 25, 200)
	users, total, aerr := h.Service.ListUsers(q.Search, q.Role, p.Offset, p.Limit)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", userDTO.FromUserModels(users), &pagination)
}
