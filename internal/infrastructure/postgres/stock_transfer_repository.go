package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.StockTransferRepository = (*StockTransferRepo)(nil)

// StockTransferRepo implementación del puerto StockTransferRepository sobre PostgreSQL.
type StockTransferRepo struct {
	q Querier
}

// NewStockTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransferRepository(q Querier) *StockTransferRepo {
	return &StockTransferRepo{q: q}
}

// Create inserta el registro del traslado. Los movimientos de stock asociados
// van en la misma transacción vía TxRunner.
func (r *StockTransferRepo) Create(transfer *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (id, org_id, product_id, from_location_id, to_location_id, quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.OrgID, transfer.ProductID, transfer.FromLocationID,
		transfer.ToLocationID, transfer.Quantity, transfer.Notes, transfer.CreatedBy, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transfer: %w", translateConstraint(err))
	}
	return nil
}

// ListByOrg lista los traslados de la organización, más reciente primero.
func (r *StockTransferRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, org_id, product_id, from_location_id, to_location_id, quantity, notes, created_by, created_at
		FROM stock_transfers WHERE org_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(&t.ID, &t.OrgID, &t.ProductID, &t.FromLocationID,
			&t.ToLocationID, &t.Quantity, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
