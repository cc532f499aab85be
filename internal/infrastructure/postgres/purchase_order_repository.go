package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, org_id, order_number, supplier_id, supplier_name, status, total_amount, notes, expected_at, created_by, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta cabecera y líneas. Llamar dentro de una transacción (TxRunner)
// para que la orden sea atómica.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrgID, order.OrderNumber, nullIfEmpty(order.SupplierID), order.SupplierName,
		order.Status, order.TotalAmount, order.Notes, order.ExpectedAt, order.CreatedBy,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", translateConstraint(err))
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO purchase_order_items (id, order_id, product_id, quantity, unit_cost, received_quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitCost, item.ReceivedQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", translateConstraint(err))
		}
	}
	return nil
}

// GetByID devuelve la orden con sus líneas, o nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var supplierID *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.OrgID, &o.OrderNumber, &supplierID, &o.SupplierName, &o.Status,
		&o.TotalAmount, &o.Notes, &o.ExpectedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if supplierID != nil {
		o.SupplierID = *supplierID
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// ListByOrg lista las órdenes de la organización (sin líneas), más reciente
// primero, con filtro opcional por estado.
func (r *PurchaseOrderRepo) ListByOrg(orgID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		var supplierID *string
		if err := rows.Scan(&o.ID, &o.OrgID, &o.OrderNumber, &supplierID, &o.SupplierName,
			&o.Status, &o.TotalAmount, &o.Notes, &o.ExpectedAt, &o.CreatedBy,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		if supplierID != nil {
			o.SupplierID = *supplierID
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza solo el estado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", translateConstraint(err))
	}
	return nil
}

// UpdateItemReceived actualiza la cantidad recibida de una línea.
func (r *PurchaseOrderRepo) UpdateItemReceived(itemID string, receivedQty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_items SET received_quantity = $2 WHERE id = $1`, itemID, receivedQty)
	if err != nil {
		return fmt.Errorf("update purchase order item: %w", translateConstraint(err))
	}
	return nil
}

func (r *PurchaseOrderRepo) loadItems(orderID string) ([]entity.PurchaseOrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, quantity, unit_cost, received_quantity
		FROM purchase_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID,
			&it.Quantity, &it.UnitCost, &it.ReceivedQuantity); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas con foreign key opcional.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
