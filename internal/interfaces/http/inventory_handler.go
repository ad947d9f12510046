package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/application/inventory"
	"github.com/invorya/inventory-lite/internal/application/validate"
	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/pkg/logger"
)

// InventoryHandler maneja los ajustes de inventario.
type InventoryHandler struct {
	uc  *inventory.AdjustmentUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustmentUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Historial de ajustes de inventario
// @Tags         inventory
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}   dto.AdjustmentResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory-adjustments [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("productId"))
	if err != nil {
		return internalError(c, h.log, "adjustments.list", err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar ajuste de inventario
// @Description  Ajuste atómico: el registro del movimiento y el nuevo stock del producto se confirman juntos o no se confirma nada. Un egreso mayor al stock disponible se rechaza.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory-adjustments [post]
func (h *InventoryHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validate.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: errs})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para el egreso"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ajuste inválido"})
		}
		return internalError(c, h.log, "adjustments.register", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
