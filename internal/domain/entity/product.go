package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock actual.
// Price y CostPrice son NUMERIC en la base; Stock solo se modifica vía
// ajustes de inventario (inventory_adjustments).
type Product struct {
	ID                string
	Name              string
	SKU               string // único por catálogo (constraint en BD + pre-chequeo)
	Description       string
	CategoryID        *string // nullable; la FK hace SET NULL al borrar la categoría
	Price             decimal.Decimal
	CostPrice         decimal.Decimal
	Stock             int
	LowStockThreshold int
	ImageURL          *string // data URL o URL externa
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock está por debajo del umbral configurado.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.LowStockThreshold
}

// ProductWithCategory composición de solo lectura producto + categoría (LEFT JOIN).
// No es una entidad persistida.
type ProductWithCategory struct {
	Product
	Category *Category
}
