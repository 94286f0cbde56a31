package utils

import (
	"errors"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseForError maps the error taxonomy to a status code.
func ResponseForError(ctx *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidationError(err):
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return ResponseError(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return ResponseError(ctx, fiber.StatusForbidden, err.Error())
	default:
		return ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
