package usecase

import (
	"testing"
	"time"

	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(repo *fakeProductRepo, id, name, sku string, stock, threshold int) {
	now := time.Now()
	repo.products[id] = &entity.Product{
		ID:                id,
		Name:              name,
		SKU:               sku,
		Price:             decimal.NewFromInt(100),
		Stock:             stock,
		LowStockThreshold: threshold,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestProductCreateAppliesDefaults(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:  "Teclado",
		SKU:   "KB-001",
		Price: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 0, out.Stock)
	assert.Equal(t, 10, out.LowStockThreshold)
	assert.True(t, out.IsActive)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestProductCreateDuplicateSKU(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Teclado", "KB-001", 5, 10)
	uc := NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Otro teclado",
		SKU:   "KB-001",
		Price: decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductUpdatePartial(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Teclado", "KB-001", 5, 10)
	uc := NewProductUseCase(repo)

	newStock := 20
	newPrice := decimal.NewFromInt(75)
	out, err := uc.Update("p1", dto.UpdateProductRequest{
		Stock: &newStock,
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Teclado", out.Name, "los campos ausentes no cambian")
	assert.Equal(t, "KB-001", out.SKU)
	assert.Equal(t, 20, out.Stock)
	assert.True(t, out.Price.Equal(newPrice))
}

func TestProductUpdateSKUConflict(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Teclado", "KB-001", 5, 10)
	seedProduct(repo, "p2", "Mouse", "MS-001", 5, 10)
	uc := NewProductUseCase(repo)

	sku := "KB-001"
	_, err := uc.Update("p2", dto.UpdateProductRequest{SKU: &sku})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	// El mismo producto puede conservar su propio SKU.
	out, err := uc.Update("p1", dto.UpdateProductRequest{SKU: &sku})
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestProductUpdateNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	name := "Nada"
	out, err := uc.Update("missing", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Teclado", "KB-001", 5, 10)
	uc := NewProductUseCase(repo)

	ok, err := uc.Delete("p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete("p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductListFilters(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Teclado mecánico", "KB-001", 5, 10)
	seedProduct(repo, "p2", "Mouse gamer", "MS-001", 50, 10)
	uc := NewProductUseCase(repo)

	out, err := uc.List(repository.ProductFilters{Search: "teclado", LowStock: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "KB-001", out[0].SKU)
}

func TestProductReports(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", "Bajo", "LOW-01", 2, 10)
	seedProduct(repo, "p2", "Agotado", "OUT-01", 0, 10)
	seedProduct(repo, "p3", "Sano", "OK-01", 99, 10)
	uc := NewProductUseCase(repo)

	low, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 2, "el agotado también está bajo el umbral")

	out, err := uc.ListOutOfStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "OUT-01", out[0].SKU)
}
