package entity

import "time"

// StockHistory registra cada cambio aplicado por el reconciliador de stock:
// cantidad anterior, cantidad nueva, delta recibido y tipo de cambio.
// Es una bitácora de solo inserción.
type StockHistory struct {
	ID               string
	OrgID            string
	ProductID        string
	LocationID       string
	ChangeType       string // add, remove u otro valor recibido
	Delta            int64
	PreviousQuantity int64
	NewQuantity      int64
	CreatedBy        string
	CreatedAt        time.Time
}
