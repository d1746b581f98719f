package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// DriverRepository puerto de persistencia para Driver.
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	List(limit, offset int) ([]*entity.Driver, error)
	Update(driver *entity.Driver) error
	Delete(id string) error
}
