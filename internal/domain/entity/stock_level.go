package entity

import "time"

// Tipos de cambio de stock aceptados por el reconciliador.
// Cualquier otro valor se trata como asignación directa de cantidad.
const (
	ChangeTypeAdd    = "add"
	ChangeTypeRemove = "remove"
)

// StockLevel representa la cantidad disponible de un producto en una ubicación
// para una organización. Clave compuesta (org, producto, ubicación): exactamente
// una fila por triple, garantizado por upsert sobre la clave única.
// Las filas se crean de forma perezosa en la primera operación de stock.
type StockLevel struct {
	OrgID        string
	ProductID    string
	LocationID   string
	Quantity     int64
	ReorderPoint *int64 // nil = usar el del producto
	UpdatedAt    time.Time
}
