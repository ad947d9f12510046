package postgres

import (
	"time"

	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func sampleProduct() *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:                "p1",
		Name:              "Phone X",
		SKU:               "PHX-01",
		Price:             decimal.NewFromInt(999),
		CostPrice:         decimal.NewFromInt(500),
		Stock:             5,
		LowStockThreshold: 10,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
