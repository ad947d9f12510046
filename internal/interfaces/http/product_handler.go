package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/application/usecase"
	"github.com/invorya/inventory-lite/internal/application/validate"
	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/internal/domain/repository"
	"github.com/invorya/inventory-lite/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Description  Filtros componibles: search (substring sobre name o sku, sin distinguir mayúsculas), categoryId (igualdad) y lowStock=true.
// @Tags         products
// @Produce      json
// @Param        search      query  string  false  "Substring sobre name o sku"
// @Param        categoryId  query  string  false  "ID de categoría"
// @Param        lowStock    query  bool    false  "Solo stock bajo el umbral"
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filters := repository.ProductFilters{
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
		LowStock:   c.QueryBool("lowStock"),
	}
	out, err := h.uc.List(filters)
	if err != nil {
		return internalError(c, h.log, "products.list", err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos activos con stock menor a su umbral, los más críticos primero.
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock()
	if err != nil {
		return internalError(c, h.log, "products.low_stock", err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Productos agotados
// @Description  Productos activos con stock cero, los de movimiento más reciente primero.
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/out-of-stock [get]
func (h *ProductHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.ListOutOfStock()
	if err != nil {
		return internalError(c, h.log, "products.out_of_stock", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, h.log, "products.get", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validate.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: errs})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSKU) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya existe"})
		}
		return internalError(c, h.log, "products.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Actualización parcial: solo cambian los campos presentes en el cuerpo.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validate.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: errs})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSKU) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya existe"})
		}
		return internalError(c, h.log, "products.update", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	ok, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, h.log, "products.delete", err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkImport godoc
// @Summary      Importar productos en lote
// @Description  Procesa cada fila de forma independiente: las válidas se crean y las inválidas se reportan en errorDetails (fila 1-indexada). Siempre responde 200 con el resumen.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkImportRequest  true  "Filas a importar"
// @Success      200   {object}  dto.BulkImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/bulk-import [post]
func (h *ProductHandler) BulkImport(c *fiber.Ctx) error {
	var in dto.BulkImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Products == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "products debe ser un arreglo"})
	}

	out := dto.BulkImportResponse{
		Results:      []dto.ProductResponse{},
		ErrorDetails: []dto.RowError{},
	}
	for i, raw := range in.Products {
		row := i + 1
		var req dto.CreateProductRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			out.Errors++
			out.ErrorDetails = append(out.ErrorDetails, dto.RowError{Row: row, Error: "fila inválida: " + err.Error()})
			continue
		}
		if errs := validate.Struct(req); errs != nil {
			out.Errors++
			out.ErrorDetails = append(out.ErrorDetails, dto.RowError{Row: row, Error: joinFieldErrors(errs)})
			continue
		}
		created, err := h.uc.Create(req)
		if err != nil {
			out.Errors++
			msg := "no se pudo crear el producto"
			if errors.Is(err, domain.ErrDuplicateSKU) {
				msg = fmt.Sprintf("el SKU '%s' ya existe", req.SKU)
			} else {
				h.log.Error().Err(err).Int("row", row).Msg("bulk import: fila fallida")
			}
			out.ErrorDetails = append(out.ErrorDetails, dto.RowError{Row: row, Error: msg})
			continue
		}
		out.Success++
		out.Results = append(out.Results, *created)
	}
	return c.JSON(out)
}

func joinFieldErrors(errs []dto.FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" "+e.Message)
	}
	return strings.Join(parts, "; ")
}
