package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventory-lite/internal/application/analytics"
	"github.com/invorya/inventory-lite/pkg/logger"
)

// DashboardHandler expone las métricas del dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Stats godoc
// @Summary      Métricas del inventario
// @Description  Agregados sobre productos activos; con catálogo vacío devuelve ceros.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats()
	if err != nil {
		return internalError(c, h.log, "dashboard.stats", err)
	}
	return c.JSON(out)
}
