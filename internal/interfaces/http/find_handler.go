package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/criteria"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// FindHandler endpoint genérico de consulta: filtros, orden y paginación
// validados contra el esquema cerrado de cada entidad.
type FindHandler struct {
	finder repository.EntityFinder
}

// NewFindHandler construye el handler.
func NewFindHandler(finder repository.EntityFinder) *FindHandler {
	return &FindHandler{finder: finder}
}

// Find POST /api/:entity/find
// Un criterio malformado se rechaza completo con el detalle por campo;
// jamás se ejecuta una consulta parcial.
func (h *FindHandler) Find(c *fiber.Ctx) error {
	var req criteria.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	crit, err := criteria.Build(c.Params("entity"), req)
	if err != nil {
		return respondError(c, err)
	}
	rows, total, err := h.finder.Find(c.UserContext(), crit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FindResponse{
		Data: rows,
		Pagination: dto.Pagination{
			Total:   total,
			Limit:   crit.Limit,
			Offset:  crit.Offset,
			HasMore: crit.Offset+len(rows) < total,
		},
	})
}

// Entities GET /api/find/entities
// Lista las entidades consultables por el endpoint genérico.
func (h *FindHandler) Entities(c *fiber.Ctx) error {
	return c.JSON(criteria.Entities())
}
