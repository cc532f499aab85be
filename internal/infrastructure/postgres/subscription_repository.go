package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación del puerto SubscriptionRepository sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste la suscripción de una organización (una por org).
func (r *SubscriptionRepo) Create(sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, org_id, plan, status, max_team_members, max_products, max_locations, renews_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.OrgID, sub.Plan, sub.Status, sub.MaxTeamMembers,
		sub.MaxProducts, sub.MaxLocations, sub.RenewsAt, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", translateConstraint(err))
	}
	return nil
}

// GetByOrg obtiene la suscripción de la organización, o nil si no tiene.
func (r *SubscriptionRepo) GetByOrg(orgID string) (*entity.Subscription, error) {
	query := `
		SELECT id, org_id, plan, status, max_team_members, max_products, max_locations, renews_at, created_at, updated_at
		FROM subscriptions WHERE org_id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(context.Background(), query, orgID).Scan(
		&s.ID, &s.OrgID, &s.Plan, &s.Status, &s.MaxTeamMembers,
		&s.MaxProducts, &s.MaxLocations, &s.RenewsAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// Update actualiza plan, estado y límites de la suscripción.
func (r *SubscriptionRepo) Update(sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET plan = $2, status = $3, max_team_members = $4,
			max_products = $5, max_locations = $6, renews_at = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.Plan, sub.Status, sub.MaxTeamMembers,
		sub.MaxProducts, sub.MaxLocations, sub.RenewsAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", translateConstraint(err))
	}
	return nil
}
