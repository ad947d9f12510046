package repository

import "github.com/invorya/inventory-lite/internal/domain/entity"

// ProductFilters filtros componibles para listar productos. Los que estén
// presentes se combinan con AND.
type ProductFilters struct {
	Search     string  // substring case-insensitive sobre name O sku
	CategoryID string  // igualdad exacta
	LowStock   bool    // stock < low_stock_threshold
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los listados devuelven el producto con su categoría (LEFT JOIN); la ausencia
// de fila se reporta como (nil, nil), nunca como error.
type ProductRepository interface {
	List(filters ProductFilters) ([]*entity.ProductWithCategory, error)
	GetByID(id string) (*entity.ProductWithCategory, error)
	GetBySKU(sku string) (*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) (bool, error)
	Delete(id string) (bool, error)
	ListLowStock() ([]*entity.ProductWithCategory, error)
	ListOutOfStock() ([]*entity.ProductWithCategory, error)

	// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock fija el stock y refresca updated_at.
	UpdateStock(id string, stock int) error
}
