package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusCreated   = "created"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order pedido de cajas de un cliente, creado desde una tienda.
type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	StoreID    string          `json:"store_id"`
	CreatedBy  string          `json:"created_by"` // user id del vendedor
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Lines      []OrderLine     `json:"lines,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderLine línea de pedido: cantidad de un tipo de caja a precio unitario.
type OrderLine struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	BoxID     string          `json:"box_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
