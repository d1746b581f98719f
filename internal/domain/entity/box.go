package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Box tipo de caja del catálogo de inventario.
type Box struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"` // código corto único, ej. "CAJA-M"
	Name        string          `json:"name"`
	WidthCm     decimal.Decimal `json:"width_cm"`
	HeightCm    decimal.Decimal `json:"height_cm"`
	LengthCm    decimal.Decimal `json:"length_cm"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BoxStock existencias de un tipo de caja en una tienda.
type BoxStock struct {
	BoxID     string    `json:"box_id"`
	StoreID   string    `json:"store_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
