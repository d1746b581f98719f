package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// CatalogUseCase administración del catálogo: tiendas, zonas y tarifas.
type CatalogUseCase struct {
	storeRepo  repository.StoreRepository
	zoneRepo   repository.ZoneRepository
	tariffRepo repository.TariffRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(storeRepo repository.StoreRepository, zoneRepo repository.ZoneRepository, tariffRepo repository.TariffRepository) *CatalogUseCase {
	return &CatalogUseCase{storeRepo: storeRepo, zoneRepo: zoneRepo, tariffRepo: tariffRepo}
}

// ── Tiendas ──────────────────────────────────────────────────────────────────

// CreateStore crea una tienda activa.
func (uc *CatalogUseCase) CreateStore(in dto.CreateStoreRequest) (*entity.Store, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// ListStores lista tiendas con paginación.
func (uc *CatalogUseCase) ListStores(limit, offset int) ([]*entity.Store, error) {
	return uc.storeRepo.List(limit, offset)
}

// GetStore obtiene una tienda, ErrNotFound si no existe.
func (uc *CatalogUseCase) GetStore(id string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

// ── Zonas ────────────────────────────────────────────────────────────────────

// CreateZone crea una zona de entrega.
func (uc *CatalogUseCase) CreateZone(in dto.CreateZoneRequest) (*entity.Zone, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	zone := &entity.Zone{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.zoneRepo.Create(zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// ListZones lista zonas con paginación.
func (uc *CatalogUseCase) ListZones(limit, offset int) ([]*entity.Zone, error) {
	return uc.zoneRepo.List(limit, offset)
}

// ── Tarifas ──────────────────────────────────────────────────────────────────

// CreateTariff crea una tarifa asociada a una zona existente.
func (uc *CatalogUseCase) CreateTariff(in dto.CreateTariffRequest) (*entity.Tariff, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	zone, err := uc.zoneRepo.GetByID(in.ZoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.NewValidationError("zone_id", "la zona no existe")
	}
	if in.BasePrice.IsNegative() || in.PricePerKg.IsNegative() {
		return nil, domain.NewValidationError("base_price", "los precios no pueden ser negativos")
	}
	now := time.Now()
	tariff := &entity.Tariff{
		ID:          uuid.New().String(),
		ZoneID:      in.ZoneID,
		Name:        in.Name,
		BasePrice:   in.BasePrice,
		PricePerKg:  in.PricePerKg,
		MaxWeightKg: in.MaxWeightKg,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tariffRepo.Create(tariff); err != nil {
		return nil, err
	}
	return tariff, nil
}

// ListTariffs lista tarifas con paginación.
func (uc *CatalogUseCase) ListTariffs(limit, offset int) ([]*entity.Tariff, error) {
	return uc.tariffRepo.List(limit, offset)
}

// Quote calcula el precio de envío para zona + peso con la tarifa activa.
// El cálculo de precios vive server-side: el dashboard solo muestra el resultado.
func (uc *CatalogUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if in.WeightKg.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("weight_kg", "el peso debe ser mayor que cero")
	}
	tariff, err := uc.tariffRepo.GetActiveByZone(in.ZoneID)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, domain.ErrNotFound
	}
	if tariff.MaxWeightKg.IsPositive() && in.WeightKg.GreaterThan(tariff.MaxWeightKg) {
		return nil, domain.NewValidationError("weight_kg", "el peso supera el máximo de la tarifa")
	}
	return &dto.QuoteResponse{
		ZoneID:   in.ZoneID,
		TariffID: tariff.ID,
		WeightKg: in.WeightKg,
		Price:    tariff.Quote(in.WeightKg),
	}, nil
}
