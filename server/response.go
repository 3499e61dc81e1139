package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	errorslib "github.com/goliatone/go-errors"
	"github.com/goliatone/go-reportdoc/report"
)

// ErrorResponse describes JSON error responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains error details. Fields is populated for validation
// failures so callers see every violated constraint at once.
type ErrorBody struct {
	Message string                  `json:"message"`
	Code    string                  `json:"code,omitempty"`
	Fields  []report.FieldViolation `json:"fields,omitempty"`
}

func writeError(c *fiber.Ctx, err error) error {
	if err == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	ge := report.AsGoError(err)
	body := ErrorResponse{
		Error: ErrorBody{Message: ge.Message, Code: ge.TextCode},
	}
	var ve *report.ValidationError
	if errors.As(err, &ve) {
		body.Error.Fields = ve.Violations
	}
	return c.Status(statusForError(ge)).JSON(body)
}

func statusForError(err *errorslib.Error) int {
	if err == nil {
		return fiber.StatusInternalServerError
	}
	switch err.Category {
	case errorslib.CategoryValidation:
		return fiber.StatusUnprocessableEntity
	case errorslib.CategoryAuthz:
		return fiber.StatusUnauthorized
	case errorslib.CategoryNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
