package dto

import (
	"bytes"
	"strconv"
	"time"
)

// ApplyStockRequest body para POST /api/products/:id/stock.
// Quantity se acepta como número o string JSON; la entrada no numérica se
// coerciona a 0 en vez de rechazarse (comportamiento histórico del endpoint).
type ApplyStockRequest struct {
	LocationID string `json:"location_id,omitempty"`
	ChangeType string `json:"change_type"`
	Quantity   any    `json:"quantity"`
}

// Delta devuelve la cantidad como entero con signo. Números JSON se truncan a
// entero; strings numéricos se parsean; cualquier otra cosa vale 0.
func (r ApplyStockRequest) Delta() int64 {
	switch v := r.Quantity.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		return parseLenientInt(v)
	default:
		return 0
	}
}

func parseLenientInt(s string) int64 {
	s = string(bytes.TrimSpace([]byte(s)))
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// StockLevelResponse salida de una fila de stock.
type StockLevelResponse struct {
	OrgID        string    `json:"org_id"`
	ProductID    string    `json:"product_id"`
	LocationID   string    `json:"location_id"`
	Quantity     int64     `json:"quantity"`
	ReorderPoint *int64    `json:"reorder_point,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockHistoryResponse fila de la bitácora de movimientos.
type StockHistoryResponse struct {
	ID               string    `json:"id"`
	OrgID            string    `json:"org_id"`
	ProductID        string    `json:"product_id"`
	LocationID       string    `json:"location_id"`
	ChangeType       string    `json:"change_type"`
	Delta            int64     `json:"delta"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateTransferRequest body para POST /api/stock-transfers.
type CreateTransferRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	FromLocationID string `json:"from_location_id" validate:"required"`
	ToLocationID   string `json:"to_location_id" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	Notes          string `json:"notes"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"org_id"`
	ProductID      string    `json:"product_id"`
	FromLocationID string    `json:"from_location_id"`
	ToLocationID   string    `json:"to_location_id"`
	Quantity       int64     `json:"quantity"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
