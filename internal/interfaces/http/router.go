package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventory-lite/internal/application/analytics"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/application/inventory"
	"github.com/invorya/inventory-lite/internal/application/usecase"
	"github.com/invorya/inventory-lite/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	DashboardUC  *analytics.DashboardUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Bootstrap: siembra categorías iniciales si el catálogo está vacío
	initHandler := NewInitHandler(deps.CategoryUC, deps.Log)
	api.Get("/init", initHandler.Init)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard/stats", dashboardHandler.Stats)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products. Las rutas literales van antes que /:id para que Fiber no las
	// capture como parámetro.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Post("/bulk-import", productHandler.BulkImport)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory adjustments
	adjustments := api.Group("/inventory-adjustments")
	inventoryHandler := NewInventoryHandler(deps.AdjustmentUC, deps.Log)
	adjustments.Get("/", inventoryHandler.List)
	adjustments.Post("/", inventoryHandler.Register)
}

// internalError registra el error completo en el servidor y devuelve al
// cliente un mensaje opaco, sin detalles internos.
func internalError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
