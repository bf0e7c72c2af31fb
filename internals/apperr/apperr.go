// Package apperr membawa error domain ber-tag: status transport + kode error
// internal + pesan. Service mengembalikan *Error, controller yang memutuskan
// cara surface-nya (tidak ada panic/throw lintas layer).
package apperr

import "github.com/gofiber/fiber/v2"

// Kode error internal (stabil, dipakai klien untuk branching).
const (
	CodeInternal         = "E501"
	CodeUniqueConstraint = "E401"
	CodeUserNotFound     = "E402"
	CodeBadRequest       = "E400"
	CodeCommonNotFound   = "E444"
)

type Error struct {
	Status  int    `json:"error"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return New(fiber.StatusNotFound, code, message)
}

func BadRequest(code, message string) *Error {
	return New(fiber.StatusBadRequest, code, message)
}

func Internal(message string) *Error {
	if message == "" {
		message = "internal error"
	}
	return New(fiber.StatusInternalServerError, CodeInternal, message)
}

func (e *Error) IsNotFound() bool   { return e != nil && e.Status == fiber.StatusNotFound }
func (e *Error) IsBadRequest() bool { return e != nil && e.Status == fiber.StatusBadRequest }
