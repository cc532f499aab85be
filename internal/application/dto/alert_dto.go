package dto

import "time"

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkAlertsReadRequest body para PATCH /api/alerts (marcado masivo).
type MarkAlertsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
