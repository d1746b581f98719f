package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	ZoneID  string `json:"zone_id" validate:"omitempty,uuid"`
}

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CreateZoneRequest entrada para crear una zona.
type CreateZoneRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// CreateBoxRequest entrada para crear un tipo de caja.
type CreateBoxRequest struct {
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	WidthCm     decimal.Decimal `json:"width_cm"`
	HeightCm    decimal.Decimal `json:"height_cm"`
	LengthCm    decimal.Decimal `json:"length_cm"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SetBoxStockRequest fija las existencias de una caja en una tienda.
type SetBoxStockRequest struct {
	StoreID  string `json:"store_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// CreateTariffRequest entrada para crear una tarifa de zona.
type CreateTariffRequest struct {
	ZoneID      string          `json:"zone_id" validate:"required,uuid"`
	Name        string          `json:"name" validate:"required"`
	BasePrice   decimal.Decimal `json:"base_price"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
}

// QuoteRequest entrada para cotizar un envío: zona + peso.
type QuoteRequest struct {
	ZoneID   string          `json:"zone_id" validate:"required,uuid"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

// QuoteResponse precio calculado server-side.
type QuoteResponse struct {
	ZoneID   string          `json:"zone_id"`
	TariffID string          `json:"tariff_id"`
	WeightKg decimal.Decimal `json:"weight_kg"`
	Price    decimal.Decimal `json:"price"`
}

// CreateDriverRequest entrada para crear un conductor.
type CreateDriverRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	LicensePlate string `json:"license_plate" validate:"required"`
}
