package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/application/shipping"
)

// ShipmentHandler ciclo de vida de envíos (CAN_SHIP).
type ShipmentHandler struct {
	uc *shipping.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *shipping.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create POST /api/shipments
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipment, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// GetByID GET /api/shipments/:id
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	shipment, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shipment)
}

// List GET /api/shipments
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AssignDriver POST /api/shipments/:id/assign
func (h *ShipmentHandler) AssignDriver(c *fiber.Ctx) error {
	var in dto.AssignDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipment, err := h.uc.AssignDriver(c.Params("id"), in.DriverID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shipment)
}

// Transition POST /api/shipments/:id/transition
func (h *ShipmentHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipment, err := h.uc.Transition(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shipment)
}

// Label GET /api/shipments/:id/label
// Devuelve la guía en PDF lista para imprimir.
func (h *ShipmentHandler) Label(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Label(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="guia.pdf"`)
	return c.Send(pdfBytes)
}
