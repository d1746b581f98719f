package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order (líneas incluidas).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
