package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los nombres de campo
// siguen el contrato del cliente (camelCase).
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Description       string          `json:"description"`
	CategoryID        *string         `json:"categoryId" validate:"omitempty,uuid"`
	Price             decimal.Decimal `json:"price" validate:"required"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	Stock             *int            `json:"stock" validate:"omitempty,min=0"`
	LowStockThreshold *int            `json:"lowStockThreshold" validate:"omitempty,min=0"`
	ImageURL          *string         `json:"imageUrl"`
	IsActive          *bool           `json:"isActive"`
}

// UpdateProductRequest entrada para actualización parcial de un producto.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU               *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Description       *string          `json:"description"`
	CategoryID        *string          `json:"categoryId" validate:"omitempty,uuid"`
	Price             *decimal.Decimal `json:"price"`
	CostPrice         *decimal.Decimal `json:"costPrice"`
	Stock             *int             `json:"stock" validate:"omitempty,min=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" validate:"omitempty,min=0"`
	ImageURL          *string          `json:"imageUrl"`
	IsActive          *bool            `json:"isActive"`
}

// ProductResponse salida de un producto. Category viene solo en listados y
// consultas por ID (resultado del join); null si el producto no tiene categoría.
type ProductResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	SKU               string            `json:"sku"`
	Description       string            `json:"description"`
	CategoryID        *string           `json:"categoryId"`
	Price             decimal.Decimal   `json:"price"`
	CostPrice         decimal.Decimal   `json:"costPrice"`
	Stock             int               `json:"stock"`
	LowStockThreshold int               `json:"lowStockThreshold"`
	ImageURL          *string           `json:"imageUrl"`
	IsActive          bool              `json:"isActive"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	Category          *CategoryResponse `json:"category,omitempty"`
}

// BulkImportRequest cuerpo de POST /api/products/bulk-import.
// Las filas se decodifican una a una para poder reportar errores por fila.
type BulkImportRequest struct {
	Products []json.RawMessage `json:"products"`
}

// RowError error de una fila del import masivo. Row es 1-indexado.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BulkImportResponse resumen del import masivo: el batch nunca se aborta,
// cada fila reporta su propio resultado.
type BulkImportResponse struct {
	Success      int               `json:"success"`
	Errors       int               `json:"errors"`
	Results      []ProductResponse `json:"results"`
	ErrorDetails []RowError        `json:"errorDetails"`
}
