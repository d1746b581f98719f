package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jbglogistica/logistica-api/internal/nav"
)

// NavHandler menú de navegación filtrado por los permisos del token.
type NavHandler struct{}

// NewNavHandler construye el handler.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Menu GET /api/nav/menu
// Devuelve solo las secciones e ítems visibles para el usuario autenticado.
// Las secciones que quedan vacías tras el filtrado no aparecen.
func (h *NavHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(nav.Filter(nav.DefaultMenu, GetPermissions(c)))
}
