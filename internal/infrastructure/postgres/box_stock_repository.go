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

var _ repository.BoxStockRepository = (*BoxStockRepo)(nil)

// BoxStockRepo existencias de cajas por tienda sobre PostgreSQL.
// La tabla lleva CHECK (quantity >= 0): el stock nunca queda negativo aunque
// dos despachos compitan por las mismas cajas.
type BoxStockRepo struct {
	q Querier
}

// NewBoxStockRepository construye el adaptador de existencias.
func NewBoxStockRepository(q Querier) *BoxStockRepo {
	return &BoxStockRepo{q: q}
}

// Get obtiene las existencias de una caja en una tienda.
func (r *BoxStockRepo) Get(boxID, storeID string) (*entity.BoxStock, error) {
	var s entity.BoxStock
	err := r.q.QueryRow(context.Background(),
		`SELECT box_id, store_id, quantity, updated_at FROM box_stock WHERE box_id = $1 AND store_id = $2`,
		boxID, storeID,
	).Scan(&s.BoxID, &s.StoreID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box stock: %w", err)
	}
	return &s, nil
}

// ListByStore lista las existencias de todas las cajas de una tienda.
func (r *BoxStockRepo) ListByStore(storeID string) ([]*entity.BoxStock, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT box_id, store_id, quantity, updated_at FROM box_stock WHERE store_id = $1 ORDER BY box_id`,
		storeID)
	if err != nil {
		return nil, fmt.Errorf("list box stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoxStock
	for rows.Next() {
		var s entity.BoxStock
		if err := rows.Scan(&s.BoxID, &s.StoreID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan box stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert fija la cantidad exacta (conteo físico de bodega).
func (r *BoxStockRepo) Upsert(stock *entity.BoxStock) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO box_stock (box_id, store_id, quantity, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (box_id, store_id) DO UPDATE SET quantity = $3, updated_at = now()`,
		stock.BoxID, stock.StoreID, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert box stock: %w", err)
	}
	return nil
}

// AdjustQuantity aplica un delta atómico. Un delta que dejaría el stock
// negativo viola el CHECK de la tabla y se reporta como ErrInsufficientStock.
func (r *BoxStockRepo) AdjustQuantity(boxID, storeID string, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE box_stock SET quantity = quantity + $3, updated_at = now()
		 WHERE box_id = $1 AND store_id = $2`,
		boxID, storeID, delta,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("adjust box stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		if delta < 0 {
			return domain.ErrInsufficientStock // sin registro no hay existencias
		}
		stock := &entity.BoxStock{BoxID: boxID, StoreID: storeID, Quantity: delta}
		return r.Upsert(stock)
	}
	return nil
}
