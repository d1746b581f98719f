package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// ShipmentRepository puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	GetByTrackingCode(code string) (*entity.Shipment, error)
	List(limit, offset int) ([]*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
}
