package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardStats agrega en una sola pasada los conteos del dashboard.
// Bajo stock: cantidad agregada > 0 y ≤ punto de reorden efectivo (el de la
// fila de stock si existe, si no el del producto). Sin stock: cantidad
// agregada en cero, incluyendo productos sin filas de stock.
func (r *AnalyticsRepo) GetDashboardStats(ctx context.Context, orgID string) (*repository.DashboardStatsResult, error) {
	const query = `
	WITH product_stock AS (
	    SELECT
	        p.id,
	        p.unit_cost,
	        p.reorder_point                                   AS product_reorder,
	        COALESCE(SUM(sl.quantity), 0)                     AS total_qty,
	        MIN(COALESCE(sl.reorder_point, p.reorder_point))  AS effective_reorder
	    FROM products p
	    LEFT JOIN stock_levels sl
	        ON sl.product_id = p.id AND sl.org_id = p.org_id
	    WHERE p.org_id = $1
	    GROUP BY p.id, p.unit_cost, p.reorder_point
	)
	SELECT
	    COUNT(*)                                                                   AS total_products,
	    COUNT(*) FILTER (WHERE total_qty > 0
	                       AND total_qty <= COALESCE(effective_reorder, product_reorder)) AS low_stock,
	    COUNT(*) FILTER (WHERE total_qty = 0)                                      AS out_of_stock,
	    COALESCE(SUM(total_qty * unit_cost), 0)                                    AS inventory_value
	FROM product_stock`

	var stats repository.DashboardStatsResult
	var inventoryValue decimal.Decimal
	err := r.pool.QueryRow(ctx, query, orgID).Scan(
		&stats.TotalProducts,
		&stats.LowStockCount,
		&stats.OutOfStock,
		&inventoryValue,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboardStats: %w", err)
	}
	stats.InventoryValue = inventoryValue

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE org_id = $1 AND NOT is_read`, orgID).Scan(&stats.UnreadAlerts)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountUnreadAlerts: %w", err)
	}
	return &stats, nil
}
