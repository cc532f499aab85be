package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, org_id, name, address, is_primary, created_at, updated_at`

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación nueva.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.OrgID, location.Name, location.Address,
		location.IsPrimary, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", translateConstraint(err))
	}
	return nil
}

// GetByID obtiene una ubicación por ID, o nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.scanOne(`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
}

// GetPrimary devuelve la ubicación primaria de la organización, o nil si no hay.
func (r *LocationRepo) GetPrimary(orgID string) (*entity.Location, error) {
	return r.scanOne(`SELECT `+locationColumns+` FROM locations WHERE org_id = $1 AND is_primary`, orgID)
}

// ClearPrimary desmarca la ubicación primaria actual de la organización.
func (r *LocationRepo) ClearPrimary(orgID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE locations SET is_primary = false, updated_at = now() WHERE org_id = $1 AND is_primary`, orgID)
	if err != nil {
		return fmt.Errorf("clear primary location: %w", err)
	}
	return nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, address = $3, is_primary = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.IsPrimary, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", translateConstraint(err))
	}
	return nil
}

// ListByOrg lista las ubicaciones de la organización (primaria primero).
func (r *LocationRepo) ListByOrg(orgID string) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE org_id = $1 ORDER BY is_primary DESC, created_at`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.OrgID, &l.Name, &l.Address,
			&l.IsPrimary, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountByOrg cuenta las ubicaciones de la organización (límite del plan).
func (r *LocationRepo) CountByOrg(orgID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM locations WHERE org_id = $1`, orgID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return count, nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", translateConstraint(err))
	}
	return nil
}

func (r *LocationRepo) scanOne(query string, args ...any) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.OrgID, &l.Name, &l.Address, &l.IsPrimary, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
