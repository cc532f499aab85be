package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.ExportRepository = (*ExportRepo)(nil)

// exportQueries SQL por tabla, siempre acotado al tenant ($1 = org_id).
// El caso de uso valida la tabla contra su whitelist antes de llegar aquí;
// este mapa es la segunda línea: nada fuera de él se ejecuta jamás.
var exportQueries = map[string]string{
	"products": `
		SELECT id, sku, name, description, category, unit_cost, selling_price, reorder_point, created_at, updated_at
		FROM products WHERE org_id = $1 ORDER BY created_at`,
	"locations": `
		SELECT id, name, address, is_primary, created_at, updated_at
		FROM locations WHERE org_id = $1 ORDER BY created_at`,
	"suppliers": `
		SELECT id, name, contact_person, email, phone, address, created_at, updated_at
		FROM suppliers WHERE org_id = $1 ORDER BY name`,
	"customers": `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM customers WHERE org_id = $1 ORDER BY name`,
	"purchase_orders": `
		SELECT id, order_number, supplier_name, status, total_amount, notes, expected_at, created_at, updated_at
		FROM purchase_orders WHERE org_id = $1 ORDER BY created_at`,
	"stock_transfers": `
		SELECT id, product_id, from_location_id, to_location_id, quantity, notes, created_at
		FROM stock_transfers WHERE org_id = $1 ORDER BY created_at`,
	"stock_history": `
		SELECT id, product_id, location_id, change_type, delta, previous_quantity, new_quantity, created_at
		FROM stock_history WHERE org_id = $1 ORDER BY created_at`,
	"alerts": `
		SELECT id, product_id, type, message, is_read, created_at
		FROM alerts WHERE org_id = $1 ORDER BY created_at`,
}

// ExportRepo lee tablas completas del tenant para exportación.
type ExportRepo struct {
	pool *pgxpool.Pool
}

// NewExportRepository construye el adaptador de exportación.
func NewExportRepository(pool *pgxpool.Pool) *ExportRepo {
	return &ExportRepo{pool: pool}
}

// FetchTable devuelve columnas y filas de la tabla indicada, acotadas al tenant.
func (r *ExportRepo) FetchTable(ctx context.Context, orgID, table string) (*repository.TableData, error) {
	query, ok := exportQueries[table]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("export.FetchTable %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	data := &repository.TableData{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("export.FetchTable %s scan: %w", table, err)
		}
		data.Rows = append(data.Rows, values)
	}
	return data, rows.Err()
}
