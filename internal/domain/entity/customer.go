package entity

import "time"

// Customer representa un cliente de la organización.
type Customer struct {
	ID        string
	OrgID     string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
