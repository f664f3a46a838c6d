package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
)

// statusFor traduce un error de dominio a status HTTP y código de respuesta.
func statusFor(err error) (int, string) {
	var ve *domain.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnsupportedType):
		return fiber.StatusBadRequest, "UNSUPPORTED_TYPE"
	case errors.Is(err, domain.ErrTooLarge):
		return fiber.StatusBadRequest, "FILE_TOO_LARGE"
	case errors.Is(err, domain.ErrInvalidResetLink):
		return fiber.StatusBadRequest, "INVALID_RESET_LINK"
	case errors.Is(err, domain.ErrWrongPassword):
		return fiber.StatusBadRequest, "WRONG_PASSWORD"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.As(err, &fe):
		return fe.Code, "HTTP_ERROR"
	}
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return fiber.StatusInternalServerError, "PERSISTENCE"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// writeError responde con el status y cuerpo correspondientes a err.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	body := dto.ErrorResponse{Code: code, Message: err.Error()}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Fields
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler handler de errores de Fiber: lo que un handler devuelva sin responder se
// mapea igual que en writeError y los 5xx quedan en el log.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, _ := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		}
		return writeError(c, err)
	}
}
