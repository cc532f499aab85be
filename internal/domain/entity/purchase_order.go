package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusPending   = "pending"
	POStatusOrdered   = "ordered"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa la cabecera de una orden de compra.
// TotalAmount se deriva como Σ(cantidad × costo unitario) de las líneas al
// momento de la creación y no se recalcula después.
type PurchaseOrder struct {
	ID           string
	OrgID        string
	OrderNumber  string
	SupplierID   string
	SupplierName string
	Status       string
	TotalAmount  decimal.Decimal
	Notes        string
	ExpectedAt   *time.Time
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []PurchaseOrderItem
}

// PurchaseOrderItem representa una línea de la orden. Las líneas se crean de
// forma atómica junto con la cabecera; solo ReceivedQuantity muta después.
type PurchaseOrderItem struct {
	ID               string
	OrderID          string
	ProductID        string
	Quantity         int64
	UnitCost         decimal.Decimal
	ReceivedQuantity int64
}
