package entity

import "time"

// DefaultLocationName nombre de la ubicación creada implícitamente cuando una
// operación de stock no indica ubicación y la organización no tiene primaria.
const DefaultLocationName = "Main Warehouse"

// Location representa una bodega o sucursal donde se almacena inventario.
// A lo sumo una ubicación primaria por organización; es el destino implícito
// cuando una operación de stock omite la ubicación.
type Location struct {
	ID        string
	OrgID     string
	Name      string
	Address   string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
