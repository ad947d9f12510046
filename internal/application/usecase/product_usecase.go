package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos con filtros componibles, cada uno con su categoría.
func (uc *ProductUseCase) List(filters repository.ProductFilters) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(filters)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return toResponses(products), nil
}

// GetByID obtiene un producto con su categoría. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return nil, nil
	}
	resp := dto.ToProductWithCategoryResponse(product)
	return &resp, nil
}

// Create registra un producto nuevo. El SKU debe ser único en todo el catálogo,
// incluidos los productos inactivos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, fmt.Errorf("verificar SKU: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		SKU:               in.SKU,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		Price:             in.Price,
		CostPrice:         in.CostPrice,
		Stock:             0,
		LowStockThreshold: 10,
		ImageURL:          in.ImageURL,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}

	if err := uc.repo.Create(product); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update aplica una actualización parcial: solo cambian los campos presentes.
// (nil, nil) si el producto no existe; ErrDuplicateSKU si el nuevo SKU
// pertenece a otro producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if current == nil {
		return nil, nil
	}
	product := current.Product

	if in.SKU != nil && *in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, fmt.Errorf("verificar SKU: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicateSKU
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.ImageURL != nil {
		product.ImageURL = in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now().UTC()

	ok, err := uc.repo.Update(&product)
	if err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	if !ok {
		return nil, nil
	}
	resp := dto.ToProductResponse(&product)
	return &resp, nil
}

// Delete elimina un producto definitivamente. Devuelve false si no existía.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("eliminar producto: %w", err)
	}
	return ok, nil
}

// ListLowStock productos activos con stock bajo el umbral, los más críticos primero.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, fmt.Errorf("listar stock bajo: %w", err)
	}
	return toResponses(products), nil
}

// ListOutOfStock productos activos agotados, los de movimiento más reciente primero.
func (uc *ProductUseCase) ListOutOfStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListOutOfStock()
	if err != nil {
		return nil, fmt.Errorf("listar agotados: %w", err)
	}
	return toResponses(products), nil
}

func toResponses(products []*entity.ProductWithCategory) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductWithCategoryResponse(p))
	}
	return out
}
