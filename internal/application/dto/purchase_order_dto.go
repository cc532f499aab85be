package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderItem línea de una orden de compra nueva.
type CreatePurchaseOrderItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                    `json:"supplier_id,omitempty"`
	SupplierName string                    `json:"supplier_name"`
	Notes        string                    `json:"notes"`
	ExpectedAt   *time.Time                `json:"expected_at,omitempty"`
	Items        []CreatePurchaseOrderItem `json:"items"`
}

// UpdatePOStatusRequest body para PATCH /api/purchase-orders/:id/status.
type UpdatePOStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PurchaseOrderItemResponse línea de una orden en respuestas.
type PurchaseOrderItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Quantity         int64           `json:"quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ReceivedQuantity int64           `json:"received_quantity"`
}

// PurchaseOrderResponse salida de una orden de compra con sus líneas.
type PurchaseOrderResponse struct {
	ID           string                      `json:"id"`
	OrgID        string                      `json:"org_id"`
	OrderNumber  string                      `json:"order_number"`
	SupplierID   string                      `json:"supplier_id,omitempty"`
	SupplierName string                      `json:"supplier_name"`
	Status       string                      `json:"status"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	Notes        string                      `json:"notes"`
	ExpectedAt   *time.Time                  `json:"expected_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	Items        []PurchaseOrderItemResponse `json:"items"`
}
