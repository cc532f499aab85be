package dto

import "time"

// OrganizationResponse salida de la organización del usuario autenticado.
type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"owner_user_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateOrganizationRequest actualización de datos de la organización.
type UpdateOrganizationRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// MemberListResponse miembros de la organización.
type MemberListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
