package entity

import "time"

// StockTransfer representa un traslado de stock entre dos ubicaciones de la
// misma organización. Se aplica de forma transaccional: salida en origen
// (con recorte a cero) y entrada en destino.
type StockTransfer struct {
	ID             string
	OrgID          string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       int64
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
}
