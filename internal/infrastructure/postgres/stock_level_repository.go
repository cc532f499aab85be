package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del puerto StockLevelRepository sobre PostgreSQL.
// La clave única (org_id, product_id, location_id) garantiza una fila por triple.
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get devuelve la fila del triple, o nil si aún no tiene stock registrado.
func (r *StockLevelRepo) Get(orgID, productID, locationID string) (*entity.StockLevel, error) {
	return r.scanOne(`
		SELECT org_id, product_id, location_id, quantity, reorder_point, updated_at
		FROM stock_levels WHERE org_id = $1 AND product_id = $2 AND location_id = $3`,
		orgID, productID, locationID)
}

// GetForUpdate bloquea la fila del triple (SELECT FOR UPDATE) hasta el commit
// de la transacción; nil si no existe.
func (r *StockLevelRepo) GetForUpdate(orgID, productID, locationID string) (*entity.StockLevel, error) {
	return r.scanOne(`
		SELECT org_id, product_id, location_id, quantity, reorder_point, updated_at
		FROM stock_levels WHERE org_id = $1 AND product_id = $2 AND location_id = $3
		FOR UPDATE`,
		orgID, productID, locationID)
}

// Upsert inserta o sobreescribe la cantidad sobre la clave única del triple.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (org_id, product_id, location_id, quantity, reorder_point, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (org_id, product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		level.OrgID, level.ProductID, level.LocationID,
		level.Quantity, level.ReorderPoint, level.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", translateConstraint(err))
	}
	return nil
}

// ListByProduct lista el stock de un producto en todas las ubicaciones.
func (r *StockLevelRepo) ListByProduct(orgID, productID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT org_id, product_id, location_id, quantity, reorder_point, updated_at
		FROM stock_levels WHERE org_id = $1 AND product_id = $2 ORDER BY location_id`
	rows, err := r.q.Query(context.Background(), query, orgID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.OrgID, &s.ProductID, &s.LocationID,
			&s.Quantity, &s.ReorderPoint, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StockLevelRepo) scanOne(query string, args ...any) (*entity.StockLevel, error) {
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.OrgID, &s.ProductID, &s.LocationID, &s.Quantity, &s.ReorderPoint, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}
