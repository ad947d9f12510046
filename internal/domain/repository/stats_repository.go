package repository

import "github.com/shopspring/decimal"

// DashboardStats agregados sobre productos activos.
type DashboardStats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal // sum(price * stock)
	LowStockCount   int
	OutOfStockCount int
}

// StatsRepository consultas de solo lectura para el dashboard.
type StatsRepository interface {
	GetDashboardStats() (*DashboardStats, error)
}
