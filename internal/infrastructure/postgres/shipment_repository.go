package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de persistencia para envíos.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentSelect = `
	SELECT id, order_id, tracking_code, zone_id, driver_id, status, weight_kg, price,
	       address, created_at, updated_at, delivered_at
	FROM shipments`

// Create persiste un envío nuevo.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO shipments (id, order_id, tracking_code, zone_id, driver_id, status, weight_kg, price, address, created_at, updated_at, delivered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		shipment.ID, shipment.OrderID, shipment.TrackingCode, shipment.ZoneID,
		nullIfEmpty(shipment.DriverID), shipment.Status, shipment.WeightKg, shipment.Price,
		shipment.Address, shipment.CreatedAt, shipment.UpdatedAt, shipment.DeliveredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	return r.getOne(shipmentSelect+` WHERE id = $1`, id)
}

// GetByTrackingCode obtiene un envío por código de guía.
func (r *ShipmentRepo) GetByTrackingCode(code string) (*entity.Shipment, error) {
	return r.getOne(shipmentSelect+` WHERE tracking_code = $1`, code)
}

func (r *ShipmentRepo) getOne(query string, arg any) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(context.Background(), query, arg).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// List lista envíos con paginación.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(context.Background(),
		shipmentSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update persiste estado, conductor y fecha de entrega del envío.
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE shipments SET driver_id = $2, status = $3, updated_at = $4, delivered_at = $5
		 WHERE id = $1`,
		shipment.ID, nullIfEmpty(shipment.DriverID), shipment.Status,
		shipment.UpdatedAt, shipment.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanShipment(scan func(dest ...any) error) (*entity.Shipment, error) {
	var (
		s        entity.Shipment
		driverID *string
	)
	err := scan(&s.ID, &s.OrderID, &s.TrackingCode, &s.ZoneID, &driverID, &s.Status,
		&s.WeightKg, &s.Price, &s.Address, &s.CreatedAt, &s.UpdatedAt, &s.DeliveredAt)
	if err != nil {
		return nil, err
	}
	if driverID != nil {
		s.DriverID = *driverID
	}
	return &s, nil
}
