package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create inserta una alerta nueva (no leída).
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, org_id, product_id, type, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.OrgID, alert.ProductID, alert.Type, alert.Message,
		alert.IsRead, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", translateConstraint(err))
	}
	return nil
}

// ListByOrg lista alertas de la organización, más reciente primero.
func (r *AlertRepo) ListByOrg(orgID string, unreadOnly bool, limit, offset int) ([]*entity.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, org_id, product_id, type, message, is_read, created_at
		FROM alerts WHERE org_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.OrgID, &a.ProductID, &a.Type,
			&a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkRead marca como leídas las alertas indicadas, solo si pertenecen a la
// organización. Devuelve cuántas filas cambiaron.
func (r *AlertRepo) MarkRead(orgID string, ids []string) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE alerts SET is_read = true WHERE org_id = $1 AND id = ANY($2) AND NOT is_read`,
		orgID, ids)
	if err != nil {
		return 0, fmt.Errorf("mark alerts read: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// HasUnread indica si ya existe una alerta no leída del mismo producto y tipo.
func (r *AlertRepo) HasUnread(orgID, productID, alertType string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE org_id = $1 AND product_id = $2 AND type = $3 AND NOT is_read
		)`, orgID, productID, alertType).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unread alert: %w", err)
	}
	return exists, nil
}

// CountUnread cuenta las alertas no leídas de la organización.
func (r *AlertRepo) CountUnread(orgID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM alerts WHERE org_id = $1 AND NOT is_read`, orgID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return count, nil
}
