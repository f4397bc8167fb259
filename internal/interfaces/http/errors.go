package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
)

// writeDomainError mapea la clase del error de dominio al status HTTP.
// El detalle del backend nunca viaja en la respuesta: para errores de storage
// el caller solo ve el código estable.
func writeDomainError(c *fiber.Ctx, err error) error {
	var e *domain.Error
	if !errors.As(err, &e) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	status := fiber.StatusInternalServerError
	switch e.Kind {
	case domain.KindValidation:
		status = fiber.StatusBadRequest
	case domain.KindBusinessRule:
		status = fiber.StatusUnprocessableEntity
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindStorage:
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: e.Code, Message: e.Message})
}
