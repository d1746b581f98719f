package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// BoxUseCase catálogo de cajas y existencias por tienda.
type BoxUseCase struct {
	boxRepo   repository.BoxRepository
	stockRepo repository.BoxStockRepository
	storeRepo repository.StoreRepository
}

// NewBoxUseCase construye el caso de uso.
func NewBoxUseCase(boxRepo repository.BoxRepository, stockRepo repository.BoxStockRepository, storeRepo repository.StoreRepository) *BoxUseCase {
	return &BoxUseCase{boxRepo: boxRepo, stockRepo: stockRepo, storeRepo: storeRepo}
}

// Create crea un tipo de caja. ErrDuplicate si el código ya existe.
func (uc *BoxUseCase) Create(in dto.CreateBoxRequest) (*entity.Box, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.boxRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	box := &entity.Box{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		WidthCm:     in.WidthCm,
		HeightCm:    in.HeightCm,
		LengthCm:    in.LengthCm,
		MaxWeightKg: in.MaxWeightKg,
		UnitPrice:   in.UnitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.boxRepo.Create(box); err != nil {
		return nil, err
	}
	return box, nil
}

// GetByID obtiene una caja, ErrNotFound si no existe.
func (uc *BoxUseCase) GetByID(id string) (*entity.Box, error) {
	box, err := uc.boxRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.ErrNotFound
	}
	return box, nil
}

// List lista cajas con paginación.
func (uc *BoxUseCase) List(limit, offset int) ([]*entity.Box, error) {
	return uc.boxRepo.List(limit, offset)
}

// SetStock fija las existencias de una caja en una tienda.
func (uc *BoxUseCase) SetStock(boxID string, in dto.SetBoxStockRequest) (*entity.BoxStock, error) {
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "la cantidad no puede ser negativa")
	}
	if _, err := uc.GetByID(boxID); err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewValidationError("store_id", "la tienda no existe")
	}
	stock := &entity.BoxStock{
		BoxID:     boxID,
		StoreID:   in.StoreID,
		Quantity:  in.Quantity,
		UpdatedAt: time.Now(),
	}
	if err := uc.stockRepo.Upsert(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// StockByStore lista las existencias de una tienda.
func (uc *BoxUseCase) StockByStore(storeID string) ([]*entity.BoxStock, error) {
	return uc.stockRepo.ListByStore(storeID)
}
