package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

var _ repository.InventoryAdjustmentRepository = (*InventoryAdjustmentRepo)(nil)

// InventoryAdjustmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryAdjustmentRepo struct {
	q Querier
}

// NewInventoryAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAdjustmentRepository(q Querier) *InventoryAdjustmentRepo {
	return &InventoryAdjustmentRepo{q: q}
}

// List lista ajustes, opcionalmente filtrados por producto, los más recientes primero.
func (r *InventoryAdjustmentRepo) List(productID string) ([]*entity.InventoryAdjustment, error) {
	query := `
		SELECT id, product_id, type, quantity, reason, notes, created_at
		FROM inventory_adjustments`
	var args []any
	if productID != "" {
		query += ` WHERE product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryAdjustment
	for rows.Next() {
		var a entity.InventoryAdjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Type, &a.Quantity, &a.Reason, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create persiste un ajuste de inventario.
func (r *InventoryAdjustmentRepo) Create(adjustment *entity.InventoryAdjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_adjustments (id, product_id, type, quantity, reason, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.ProductID, adjustment.Type, adjustment.Quantity,
		adjustment.Reason, adjustment.Notes, adjustment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create adjustment: %w", err)
	}
	return nil
}
