package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventory-lite/internal/application/usecase"
	"github.com/invorya/inventory-lite/pkg/logger"
)

// InitHandler siembra los datos iniciales de la aplicación.
type InitHandler struct {
	categoryUC *usecase.CategoryUseCase
	log        *logger.Logger
}

// NewInitHandler construye el handler.
func NewInitHandler(categoryUC *usecase.CategoryUseCase, log *logger.Logger) *InitHandler {
	return &InitHandler{categoryUC: categoryUC, log: log}
}

// Init godoc
// @Summary      Inicializar catálogo
// @Description  Siembra las categorías por defecto si no existe ninguna. Idempotente.
// @Tags         init
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/init [get]
func (h *InitHandler) Init(c *fiber.Ctx) error {
	seeded, err := h.categoryUC.SeedDefaults()
	if err != nil {
		return internalError(c, h.log, "init", err)
	}
	if seeded {
		h.log.Info().Msg("categorías por defecto sembradas")
	}
	return c.JSON(fiber.Map{"message": "Initialization complete"})
}
