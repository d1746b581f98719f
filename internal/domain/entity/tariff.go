package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariff tarifa de envío por zona: precio base + precio por kg hasta un peso máximo.
type Tariff struct {
	ID          string          `json:"id"`
	ZoneID      string          `json:"zone_id"`
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"base_price"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Quote calcula el precio para un peso dado: base + peso * precio/kg.
// El peso debe ser > 0 y <= MaxWeightKg (lo valida el use case).
func (t Tariff) Quote(weightKg decimal.Decimal) decimal.Decimal {
	return t.BasePrice.Add(weightKg.Mul(t.PricePerKg)).Round(2)
}
