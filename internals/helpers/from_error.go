package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/apperr"
)

// JsonAppError menerjemahkan *apperr.Error hasil service menjadi response
// JSON standar. Selain itu fallback ke *fiber.Error, terakhir 500.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return JsonErrorWithCode(c, ae.Status, ae.Code, ae.Message)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// JsonValidatorError memetakan validator.ValidationErrors ke envelope 422
// per field; error lain jatuh ke 400 biasa.
func JsonValidatorError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fields)
	}
	return JsonError(c, fiber.StatusBadRequest, err.Error())
}

// FromFiberError mengubah error hasil Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
