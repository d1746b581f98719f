package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// DriverUseCase CRUD de conductores.
type DriverUseCase struct {
	repo repository.DriverRepository
}

// NewDriverUseCase construye el caso de uso.
func NewDriverUseCase(repo repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo}
}

// Create crea un conductor activo.
func (uc *DriverUseCase) Create(in dto.CreateDriverRequest) (*entity.Driver, error) {
	if in.Name == "" || in.LicensePlate == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	driver := &entity.Driver{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		LicensePlate: in.LicensePlate,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// GetByID obtiene un conductor, ErrNotFound si no existe.
func (uc *DriverUseCase) GetByID(id string) (*entity.Driver, error) {
	driver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}
	return driver, nil
}

// List lista conductores con paginación.
func (uc *DriverUseCase) List(limit, offset int) ([]*entity.Driver, error) {
	return uc.repo.List(limit, offset)
}
