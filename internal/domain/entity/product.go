package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// La identidad (ID, OrgID, SKU) es inmutable; precio y metadatos son mutables.
// El stock se maneja por ubicación en StockLevel, nunca aquí.
type Product struct {
	ID           string
	OrgID        string
	SKU          string // código único por organización
	Name         string
	Description  string
	Category     string
	UnitCost     decimal.Decimal
	SellingPrice decimal.Decimal
	ReorderPoint int64 // 0 = sin punto de reorden
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
