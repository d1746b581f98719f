package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// ZoneRepository puerto de persistencia para Zone.
type ZoneRepository interface {
	Create(zone *entity.Zone) error
	GetByID(id string) (*entity.Zone, error)
	List(limit, offset int) ([]*entity.Zone, error)
	Update(zone *entity.Zone) error
	Delete(id string) error
}
