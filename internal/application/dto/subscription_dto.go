package dto

import "time"

// ResourceUsage uso actual frente al límite de un recurso del plan.
// Limit -1 significa ilimitado.
type ResourceUsage struct {
	Used    int  `json:"used"`
	Limit   int  `json:"limit"`
	Reached bool `json:"reached"`
}

// SubscriptionResponse snapshot del plan y su consumo.
type SubscriptionResponse struct {
	ID          string        `json:"id"`
	OrgID       string        `json:"org_id"`
	Plan        string        `json:"plan"`
	Status      string        `json:"status"`
	TeamMembers ResourceUsage `json:"team_members"`
	Products    ResourceUsage `json:"products"`
	Locations   ResourceUsage `json:"locations"`
	RenewsAt    *time.Time    `json:"renews_at,omitempty"`
}
