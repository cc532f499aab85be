package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Address   string `json:"address"`
	IsPrimary bool   `json:"is_primary"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
// Marcar IsPrimary=true desmarca la primaria anterior.
type UpdateLocationRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address   *string `json:"address"`
	IsPrimary *bool   `json:"is_primary"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
