package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jbglogistica/logistica-api/internal/domain"
)

// Estados de un envío. Las transiciones válidas son:
//
//	pending → assigned → in_transit → delivered
//	pending | assigned → cancelled
type Shipment struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	TrackingCode string          `json:"tracking_code"`
	ZoneID       string          `json:"zone_id"`
	DriverID     string          `json:"driver_id,omitempty"`
	Status       string          `json:"status"`
	WeightKg     decimal.Decimal `json:"weight_kg"`
	Price        decimal.Decimal `json:"price"`
	Address      string          `json:"address"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeliveredAt  *time.Time      `json:"delivered_at,omitempty"`
}

const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusAssigned  = "assigned"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
	ShipmentStatusCancelled = "cancelled"
)

// validShipmentTransitions transiciones permitidas de la máquina de estados.
var validShipmentTransitions = map[string][]string{
	ShipmentStatusPending:   {ShipmentStatusAssigned, ShipmentStatusCancelled},
	ShipmentStatusAssigned:  {ShipmentStatusInTransit, ShipmentStatusCancelled},
	ShipmentStatusInTransit: {ShipmentStatusDelivered},
}

// CanTransition indica si el envío puede pasar al estado destino.
func (s *Shipment) CanTransition(to string) bool {
	for _, allowed := range validShipmentTransitions[s.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition aplica la transición o devuelve ErrInvalidTransition.
func (s *Shipment) Transition(to string, now time.Time) error {
	if !s.CanTransition(to) {
		return domain.ErrInvalidTransition
	}
	s.Status = to
	s.UpdatedAt = now
	if to == ShipmentStatusDelivered {
		s.DeliveredAt = &now
	}
	return nil
}
