package repository

import "github.com/shopspring/decimal"

// ReportSummary métricas agregadas para el dashboard.
type ReportSummary struct {
	Customers          int             `json:"customers"`
	OrdersTotal        int             `json:"orders_total"`
	OrdersToday        int             `json:"orders_today"`
	ShipmentsPending   int             `json:"shipments_pending"`
	ShipmentsInTransit int             `json:"shipments_in_transit"`
	ShipmentsDelivered int             `json:"shipments_delivered"`
	Revenue            decimal.Decimal `json:"revenue"`
}

// ReportRepository consultas agregadas de solo lectura.
type ReportRepository interface {
	Summary() (*ReportSummary, error)
}
