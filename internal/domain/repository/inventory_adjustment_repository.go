package repository

import "github.com/invorya/inventory-lite/internal/domain/entity"

// InventoryAdjustmentRepository define el puerto de persistencia para los
// ajustes de inventario. List con productID vacío devuelve todos, los más
// recientes primero.
type InventoryAdjustmentRepository interface {
	List(productID string) ([]*entity.InventoryAdjustment, error)
	Create(adjustment *entity.InventoryAdjustment) error
}
