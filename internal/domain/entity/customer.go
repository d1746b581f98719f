package entity

import "time"

// Customer cliente de la empresa de logística.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"` // NIT o cédula
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	ZoneID    string    `json:"zone_id,omitempty"` // zona habitual de entrega
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
