package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categoría del catálogo, tal como viaja por la API.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Product producto del catálogo, tal como viaja por la API.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Description       string          `json:"description"`
	CategoryID        *string         `json:"categoryId"`
	Price             decimal.Decimal `json:"price"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	ImageURL          *string         `json:"imageUrl"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Category          *Category       `json:"category,omitempty"`
}

// ProductInput campos para crear o importar un producto. Los punteros
// distinguen "no enviado" de "cero".
type ProductInput struct {
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Description       string           `json:"description,omitempty"`
	CategoryID        *string          `json:"categoryId,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	CostPrice         *decimal.Decimal `json:"costPrice,omitempty"`
	Stock             *int             `json:"stock,omitempty"`
	LowStockThreshold *int             `json:"lowStockThreshold,omitempty"`
	ImageURL          *string          `json:"imageUrl,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}

// ProductUpdate actualización parcial: solo los campos presentes cambian.
type ProductUpdate struct {
	Name              *string          `json:"name,omitempty"`
	SKU               *string          `json:"sku,omitempty"`
	Description       *string          `json:"description,omitempty"`
	CategoryID        *string          `json:"categoryId,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	CostPrice         *decimal.Decimal `json:"costPrice,omitempty"`
	Stock             *int             `json:"stock,omitempty"`
	LowStockThreshold *int             `json:"lowStockThreshold,omitempty"`
	ImageURL          *string          `json:"imageUrl,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}

// CategoryInput campos para crear una categoría.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryUpdate actualización parcial de una categoría.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Adjustment ajuste de inventario registrado.
type Adjustment struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdjustmentInput campos para registrar un ajuste.
type AdjustmentInput struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"` // "in" | "out"
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}

// DashboardStats agregados del inventario.
type DashboardStats struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}

// RowError error de una fila del import masivo (1-indexada).
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BulkImportResult resumen del import masivo.
type BulkImportResult struct {
	Success      int        `json:"success"`
	Errors       int        `json:"errors"`
	Results      []Product  `json:"results"`
	ErrorDetails []RowError `json:"errorDetails"`
}
