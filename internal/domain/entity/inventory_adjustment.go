package entity

import "time"

// Tipos de ajuste de inventario.
const (
	AdjustmentTypeIn  = "in"  // entrada: suma al stock
	AdjustmentTypeOut = "out" // salida: resta del stock
)

// InventoryAdjustment representa un ajuste de inventario sobre un producto.
// Crear uno muta el stock del producto vinculado (+quantity en "in",
// -quantity en "out") dentro de la misma transacción.
type InventoryAdjustment struct {
	ID        string
	ProductID string
	Type      string // in | out
	Quantity  int    // siempre positivo; el signo lo da Type
	Reason    string
	Notes     string
	CreatedAt time.Time
}
