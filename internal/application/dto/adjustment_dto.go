package dto

import "time"

// CreateAdjustmentRequest entrada para registrar un ajuste de inventario.
type CreateAdjustmentRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=in out"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,min=1,max=200"`
	Notes     string `json:"notes" validate:"max=1000"`
}

// AdjustmentResponse salida de un ajuste de inventario.
type AdjustmentResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
