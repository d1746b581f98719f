package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// TariffRepository puerto de persistencia para Tariff.
type TariffRepository interface {
	Create(tariff *entity.Tariff) error
	GetByID(id string) (*entity.Tariff, error)
	GetActiveByZone(zoneID string) (*entity.Tariff, error)
	List(limit, offset int) ([]*entity.Tariff, error)
	Update(tariff *entity.Tariff) error
	Delete(id string) error
}
