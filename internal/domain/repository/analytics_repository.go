package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStatsResult agregados de inventario para el dashboard de una organización.
type DashboardStatsResult struct {
	TotalProducts  int
	LowStockCount  int // cantidad ≤ punto de reorden y > 0
	OutOfStock     int // cantidad agregada en cero (o sin stock registrado)
	UnreadAlerts   int
	InventoryValue decimal.Decimal // Σ cantidad × costo unitario
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context, orgID string) (*DashboardStatsResult, error)
}
