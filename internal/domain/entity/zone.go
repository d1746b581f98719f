package entity

import "time"

// Zone zona geográfica de entrega para tarificación.
type Zone struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // ej. "Z-NORTE"
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
