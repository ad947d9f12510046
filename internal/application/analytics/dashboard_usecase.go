// Package analytics expone los agregados de inventario para el dashboard.
package analytics

import (
	"fmt"

	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// DashboardUseCase calcula las métricas del dashboard.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats devuelve los agregados sobre productos activos. Con catálogo vacío
// todos los valores son cero, nunca null.
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsDTO, error) {
	stats, err := uc.statsRepo.GetDashboardStats()
	if err != nil {
		return nil, fmt.Errorf("obtener métricas: %w", err)
	}
	return &dto.DashboardStatsDTO{
		TotalProducts:   stats.TotalProducts,
		TotalValue:      stats.TotalValue.Round(2),
		LowStockCount:   stats.LowStockCount,
		OutOfStockCount: stats.OutOfStockCount,
	}, nil
}
