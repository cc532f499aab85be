package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats: conteos de
// inventario más el snapshot de la suscripción.
type DashboardStatsDTO struct {
	TotalProducts   int                  `json:"total_products"`
	LowStockCount   int                  `json:"low_stock_count"`
	OutOfStockCount int                  `json:"out_of_stock_count"`
	UnreadAlerts    int                  `json:"unread_alerts"`
	InventoryValue  decimal.Decimal      `json:"inventory_value"`
	Subscription    SubscriptionResponse `json:"subscription"`
}
