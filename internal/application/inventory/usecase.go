// Package inventory implementa el registro de ajustes de stock. El ajuste y
// la actualización del stock del producto ocurren en una sola transacción:
// nunca queda un ajuste registrado sin su efecto sobre el producto.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// AdjustmentUseCase registra y consulta ajustes de inventario.
type AdjustmentUseCase struct {
	txRunner TxRunner
	adjRepo  repository.InventoryAdjustmentRepository
}

// NewAdjustmentUseCase construye el caso de uso de ajustes.
func NewAdjustmentUseCase(txRunner TxRunner, adjRepo repository.InventoryAdjustmentRepository) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, adjRepo: adjRepo}
}

// List devuelve el historial de ajustes, opcionalmente filtrado por producto,
// del más reciente al más antiguo.
func (uc *AdjustmentUseCase) List(productID string) ([]dto.AdjustmentResponse, error) {
	adjustments, err := uc.adjRepo.List(productID)
	if err != nil {
		return nil, fmt.Errorf("listar ajustes: %w", err)
	}
	out := make([]dto.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, dto.ToAdjustmentResponse(a))
	}
	return out, nil
}

// Register aplica un ajuste de inventario. Bloquea la fila del producto
// (SELECT ... FOR UPDATE), valida el stock disponible en los egresos y
// persiste ajuste y nuevo stock en la misma transacción.
func (uc *AdjustmentUseCase) Register(ctx context.Context, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if in.Type != entity.AdjustmentTypeIn && in.Type != entity.AdjustmentTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	adjustment := &entity.InventoryAdjustment{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}

	err := uc.txRunner.Run(ctx, func(
		adjRepo repository.InventoryAdjustmentRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return fmt.Errorf("bloquear producto: %w", err)
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		switch in.Type {
		case entity.AdjustmentTypeIn:
			newStock += in.Quantity
		case entity.AdjustmentTypeOut:
			if product.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		}

		if err := adjRepo.Create(adjustment); err != nil {
			return fmt.Errorf("crear ajuste: %w", err)
		}
		if err := productRepo.UpdateStock(in.ProductID, newStock); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToAdjustmentResponse(adjustment)
	return &resp, nil
}
