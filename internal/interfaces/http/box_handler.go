package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/application/usecase"
)

// BoxHandler catálogo de cajas y existencias por tienda (CAN_MANAGE_INVENTORY).
type BoxHandler struct {
	uc *usecase.BoxUseCase
}

// NewBoxHandler construye el handler.
func NewBoxHandler(uc *usecase.BoxUseCase) *BoxHandler {
	return &BoxHandler{uc: uc}
}

// Create POST /api/boxes
func (h *BoxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	box, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(box)
}

// GetByID GET /api/boxes/:id
func (h *BoxHandler) GetByID(c *fiber.Ctx) error {
	box, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(box)
}

// List GET /api/boxes
func (h *BoxHandler) List(c *fiber.Ctx) error {
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

// SetStock PUT /api/boxes/:id/stock
// Fija las existencias exactas de la caja en una tienda (conteo físico).
func (h *BoxHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetBoxStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	stock, err := h.uc.SetStock(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// StockByStore GET /api/stores/:id/stock
func (h *BoxHandler) StockByStore(c *fiber.Ctx) error {
	list, err := h.uc.StockByStore(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
