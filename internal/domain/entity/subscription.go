package entity

import "time"

// Recursos con límite por plan. Los nombres coinciden con los que acepta el
// evaluador de límites.
const (
	ResourceTeamMembers = "team_members"
	ResourceProducts    = "products"
	ResourceLocations   = "locations"
)

// UnlimitedLimit valor de límite que significa "sin límite".
const UnlimitedLimit = -1

// Subscription representa el plan y los límites numéricos de una organización.
// Un límite de -1 significa ilimitado.
type Subscription struct {
	ID             string
	OrgID          string
	Plan           string // trial, starter, business, enterprise
	Status         string // active, past_due, cancelled
	MaxTeamMembers int
	MaxProducts    int
	MaxLocations   int
	RenewsAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LimitFor devuelve el límite configurado para el recurso indicado.
// Recursos desconocidos se tratan como ilimitados.
func (s *Subscription) LimitFor(resource string) int {
	switch resource {
	case ResourceTeamMembers:
		return s.MaxTeamMembers
	case ResourceProducts:
		return s.MaxProducts
	case ResourceLocations:
		return s.MaxLocations
	default:
		return UnlimitedLimit
	}
}
