package shipping

import (
	"context"

	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa el adaptador de PostgreSQL.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		stockRepo repository.BoxStockRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}

// LabelGenerator genera la etiqueta de envío (guía) en PDF.
type LabelGenerator interface {
	GenerateLabel(ctx context.Context, shipment *entity.Shipment, order *entity.Order, customer *entity.Customer, zone *entity.Zone) ([]byte, error)
}
