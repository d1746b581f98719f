package shipping

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// CreateOrderUseCase creación de pedidos (CAN_SELL). Los precios unitarios
// salen del catálogo, nunca del request.
type CreateOrderUseCase struct {
	tx           TxRunner
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreRepository
	boxRepo      repository.BoxRepository
	orderRepo    repository.OrderRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(tx TxRunner, customerRepo repository.CustomerRepository, storeRepo repository.StoreRepository, boxRepo repository.BoxRepository, orderRepo repository.OrderRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{tx: tx, customerRepo: customerRepo, storeRepo: storeRepo, boxRepo: boxRepo, orderRepo: orderRepo}
}

// Execute valida referencias, resuelve precios y persiste el pedido con sus líneas.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, createdBy string, in dto.CreateOrderRequest) (*entity.Order, error) {
	if len(in.Lines) == 0 {
		return nil, domain.NewValidationError("lines", "el pedido debe tener al menos una línea")
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewValidationError("customer_id", "el cliente no existe")
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewValidationError("store_id", "la tienda no existe")
	}

	now := time.Now()
	orderID := uuid.New().String()
	total := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, domain.NewValidationError("lines", "la cantidad debe ser positiva")
		}
		box, err := uc.boxRepo.GetByID(l.BoxID)
		if err != nil {
			return nil, err
		}
		if box == nil {
			return nil, domain.NewValidationError("lines", "la caja de la línea "+strconv.Itoa(i)+" no existe")
		}
		subtotal := box.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lines = append(lines, entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			BoxID:     l.BoxID,
			Quantity:  l.Quantity,
			UnitPrice: box.UnitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &entity.Order{
		ID:         orderID,
		CustomerID: in.CustomerID,
		StoreID:    in.StoreID,
		CreatedBy:  createdBy,
		Status:     entity.OrderStatusCreated,
		Total:      total.Round(2),
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// El pedido y sus líneas se insertan en una sola transacción.
	err = uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.BoxStockRepository, _ repository.ShipmentRepository) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID obtiene un pedido con sus líneas, ErrNotFound si no existe.
func (uc *CreateOrderUseCase) GetByID(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List lista pedidos con paginación.
func (uc *CreateOrderUseCase) List(limit, offset int) ([]*entity.Order, error) {
	return uc.orderRepo.List(limit, offset)
}
