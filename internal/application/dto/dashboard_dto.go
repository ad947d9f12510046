package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Agregados calculados únicamente sobre productos activos.
type DashboardStatsDTO struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalValue      decimal.Decimal `json:"totalValue"` // sum(price * stock)
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}
