package entity

import "time"

// Tipos de alerta de inventario.
const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
)

// Alert representa una notificación de inventario para una organización,
// referenciando un producto, con bandera de leída/no leída.
type Alert struct {
	ID        string
	OrgID     string
	ProductID string
	Type      string // low_stock, out_of_stock
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
