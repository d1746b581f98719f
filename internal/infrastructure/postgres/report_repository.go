package postgres

import (
	"context"
	"fmt"

	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para el dashboard.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Summary calcula las métricas del resumen en una sola consulta.
func (r *ReportRepo) Summary() (*repository.ReportSummary, error) {
	const query = `
		SELECT
			(SELECT count(*) FROM customers),
			(SELECT count(*) FROM orders),
			(SELECT count(*) FROM orders WHERE created_at >= date_trunc('day', now())),
			(SELECT count(*) FROM shipments WHERE status = 'pending'),
			(SELECT count(*) FROM shipments WHERE status = 'in_transit'),
			(SELECT count(*) FROM shipments WHERE status = 'delivered'),
			(SELECT coalesce(sum(total), 0) FROM orders WHERE status <> 'cancelled')`
	var s repository.ReportSummary
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.Customers, &s.OrdersTotal, &s.OrdersToday,
		&s.ShipmentsPending, &s.ShipmentsInTransit, &s.ShipmentsDelivered,
		&s.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}
	return &s, nil
}
