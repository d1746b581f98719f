package shipping

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// ShipmentUseCase ciclo de vida del envío: creación desde un pedido,
// asignación de conductor y transiciones de estado (CAN_SHIP).
type ShipmentUseCase struct {
	tx           TxRunner
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	tariffRepo   repository.TariffRepository
	driverRepo   repository.DriverRepository
	customerRepo repository.CustomerRepository
	zoneRepo     repository.ZoneRepository
	labels       LabelGenerator
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(
	tx TxRunner,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	tariffRepo repository.TariffRepository,
	driverRepo repository.DriverRepository,
	customerRepo repository.CustomerRepository,
	zoneRepo repository.ZoneRepository,
	labels LabelGenerator,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		tx: tx, orderRepo: orderRepo, shipmentRepo: shipmentRepo,
		tariffRepo: tariffRepo, driverRepo: driverRepo,
		customerRepo: customerRepo, zoneRepo: zoneRepo, labels: labels,
	}
}

// Create crea el envío de un pedido: cotiza el precio con la tarifa activa de
// la zona, descuenta stock de cajas de la tienda del pedido y marca el pedido
// como despachado. Todo en una transacción.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewValidationError("order_id", "el pedido no existe")
	}
	if order.Status != entity.OrderStatusCreated {
		return nil, domain.ErrConflict // pedido ya despachado o cancelado
	}

	weight, err := decimal.NewFromString(in.WeightKg)
	if err != nil || weight.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("weight_kg", "el peso debe ser un número mayor que cero")
	}
	if in.Address == "" {
		return nil, domain.NewValidationError("address", "la dirección de entrega es requerida")
	}

	tariff, err := uc.tariffRepo.GetActiveByZone(in.ZoneID)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, domain.NewValidationError("zone_id", "la zona no tiene tarifa activa")
	}
	if tariff.MaxWeightKg.IsPositive() && weight.GreaterThan(tariff.MaxWeightKg) {
		return nil, domain.NewValidationError("weight_kg", "el peso supera el máximo de la tarifa")
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		TrackingCode: newTrackingCode(),
		ZoneID:       in.ZoneID,
		Status:       entity.ShipmentStatusPending,
		WeightKg:     weight,
		Price:        tariff.Quote(weight),
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, stockRepo repository.BoxStockRepository, shipmentRepo repository.ShipmentRepository) error {
		for _, line := range order.Lines {
			if err := stockRepo.AdjustQuantity(line.BoxID, order.StoreID, -line.Quantity); err != nil {
				return err
			}
		}
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusShipped)
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// AssignDriver asigna un conductor activo a un envío pendiente (pending → assigned).
func (uc *ShipmentUseCase) AssignDriver(shipmentID, driverID string) (*entity.Shipment, error) {
	shipment, err := uc.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	driver, err := uc.driverRepo.GetByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil || !driver.IsActive {
		return nil, domain.NewValidationError("driver_id", "el conductor no existe o está inactivo")
	}
	if err := shipment.Transition(entity.ShipmentStatusAssigned, time.Now()); err != nil {
		return nil, err
	}
	shipment.DriverID = driverID
	if err := uc.shipmentRepo.Update(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// Transition aplica una transición de estado de la máquina del envío.
func (uc *ShipmentUseCase) Transition(shipmentID, status string) (*entity.Shipment, error) {
	shipment, err := uc.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if err := shipment.Transition(status, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.shipmentRepo.Update(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// GetByID obtiene un envío, ErrNotFound si no existe.
func (uc *ShipmentUseCase) GetByID(id string) (*entity.Shipment, error) {
	shipment, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return shipment, nil
}

// List lista envíos con paginación.
func (uc *ShipmentUseCase) List(limit, offset int) ([]*entity.Shipment, error) {
	return uc.shipmentRepo.List(limit, offset)
}

// Label genera la etiqueta PDF del envío (guía con código de barras).
func (uc *ShipmentUseCase) Label(ctx context.Context, shipmentID string) ([]byte, error) {
	shipment, err := uc.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetByID(shipment.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	zone, err := uc.zoneRepo.GetByID(shipment.ZoneID)
	if err != nil {
		return nil, err
	}
	return uc.labels.GenerateLabel(ctx, shipment, order, customer, zone)
}

// newTrackingCode genera un código de guía corto y legible.
func newTrackingCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "JBG-" + strings.ToUpper(raw[:10])
}
