package entity

import "time"

// Supplier representa un proveedor de la organización (compras).
type Supplier struct {
	ID            string
	OrgID         string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
