package dto

import "github.com/invorya/inventory-lite/internal/domain/entity"

// ToCategoryResponse convierte la entidad de dominio al DTO de salida.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// ToProductResponse convierte la entidad de dominio al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		Price:             p.Price,
		CostPrice:         p.CostPrice,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		ImageURL:          p.ImageURL,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToProductWithCategoryResponse incluye la categoría del join (null si no tiene).
func ToProductWithCategoryResponse(p *entity.ProductWithCategory) ProductResponse {
	resp := ToProductResponse(&p.Product)
	if p.Category != nil {
		cat := ToCategoryResponse(p.Category)
		resp.Category = &cat
	}
	return resp
}

// ToAdjustmentResponse convierte la entidad de dominio al DTO de salida.
func ToAdjustmentResponse(a *entity.InventoryAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Type:      a.Type,
		Quantity:  a.Quantity,
		Reason:    a.Reason,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}
