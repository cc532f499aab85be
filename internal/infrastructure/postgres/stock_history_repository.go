package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo bitácora de cambios de stock (solo inserción y lectura).
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create inserta un registro de cambio. La bitácora nunca se actualiza ni borra.
func (r *StockHistoryRepo) Create(record *entity.StockHistory) error {
	query := `
		INSERT INTO stock_history (id, org_id, product_id, location_id, change_type, delta, previous_quantity, new_quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.OrgID, record.ProductID, record.LocationID, record.ChangeType,
		record.Delta, record.PreviousQuantity, record.NewQuantity, record.CreatedBy, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock history: %w", translateConstraint(err))
	}
	return nil
}

// ListByProduct lista la bitácora de un producto, más reciente primero.
func (r *StockHistoryRepo) ListByProduct(orgID, productID string, limit, offset int) ([]*entity.StockHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, org_id, product_id, location_id, change_type, delta, previous_quantity, new_quantity, created_by, created_at
		FROM stock_history WHERE org_id = $1 AND product_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, orgID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		var h entity.StockHistory
		if err := rows.Scan(&h.ID, &h.OrgID, &h.ProductID, &h.LocationID, &h.ChangeType,
			&h.Delta, &h.PreviousQuantity, &h.NewQuantity, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
