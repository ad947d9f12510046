package inventory

import (
	"context"

	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos. Los
// repositorios que recibe fn están ligados a esa transacción: todo lo que
// hagan se confirma o revierte en bloque.
type TxRunner interface {
	Run(ctx context.Context, fn func(adjRepo repository.InventoryAdjustmentRepository, productRepo repository.ProductRepository) error) error
}
