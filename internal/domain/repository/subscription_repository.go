package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// SubscriptionRepository define el puerto de persistencia para Subscription.
// Una suscripción por organización.
type SubscriptionRepository interface {
	Create(sub *entity.Subscription) error
	GetByOrg(orgID string) (*entity.Subscription, error)
	Update(sub *entity.Subscription) error
}
