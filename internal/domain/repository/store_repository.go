package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// StoreRepository puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List(limit, offset int) ([]*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id string) error
}
