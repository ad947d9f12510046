package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateSKU      = errors.New("ya existe un producto con este SKU")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
