package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/inventory-lite/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los agregados del dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetDashboardStats devuelve los agregados sobre productos activos en una sola
// consulta. COALESCE garantiza ceros con el catálogo vacío.
func (r *StatsRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    COUNT(*)::int                                                           AS total_products,
	    COALESCE(SUM(price * stock), 0)                                         AS total_value,
	    COALESCE(SUM(CASE WHEN stock < low_stock_threshold THEN 1 ELSE 0 END), 0)::int AS low_stock_count,
	    COALESCE(SUM(CASE WHEN stock = 0 THEN 1 ELSE 0 END), 0)::int            AS out_of_stock_count
	FROM products
	WHERE is_active = true`

	var stats repository.DashboardStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&stats.TotalProducts, &stats.TotalValue, &stats.LowStockCount, &stats.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
