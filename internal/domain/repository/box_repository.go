package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// BoxRepository puerto de persistencia para el catálogo de cajas.
type BoxRepository interface {
	Create(box *entity.Box) error
	GetByID(id string) (*entity.Box, error)
	GetByCode(code string) (*entity.Box, error)
	List(limit, offset int) ([]*entity.Box, error)
	Update(box *entity.Box) error
	Delete(id string) error
}

// BoxStockRepository existencias de cajas por tienda. AdjustQuantity aplica un
// delta (positivo o negativo) y falla si el resultado sería negativo.
type BoxStockRepository interface {
	Get(boxID, storeID string) (*entity.BoxStock, error)
	ListByStore(storeID string) ([]*entity.BoxStock, error)
	Upsert(stock *entity.BoxStock) error
	AdjustQuantity(boxID, storeID string, delta int) error
}
