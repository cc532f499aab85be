package entity

import "time"

// Organization representa un tenant del sistema: la frontera de facturación
// y aislamiento de datos. Todo recurso pertenece a exactamente una organización.
type Organization struct {
	ID          string
	Name        string
	OwnerUserID string
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
