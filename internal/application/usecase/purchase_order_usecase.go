package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// PurchaseTxRunner ejecuta la creación de una orden (cabecera + líneas) en una
// transacción, con el repositorio atado a la tx.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(poRepo repository.PurchaseOrderRepository) error) error
}

// Transiciones de estado permitidas para una orden de compra.
var poTransitions = map[string][]string{
	entity.POStatusPending:   {entity.POStatusOrdered, entity.POStatusCancelled},
	entity.POStatusOrdered:   {entity.POStatusReceived, entity.POStatusCancelled},
	entity.POStatusReceived:  {},
	entity.POStatusCancelled: {},
}

// PurchaseOrderUseCase casos de uso de órdenes de compra.
type PurchaseOrderUseCase struct {
	txRunner     PurchaseTxRunner
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner PurchaseTxRunner,
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create valida la orden, deriva el total una sola vez como Σ(cantidad × costo
// unitario) e inserta cabecera y líneas de forma atómica.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, orgID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	fields := domain.FieldErrors{}
	supplierName := strings.TrimSpace(in.SupplierName)

	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || supplier.OrgID != orgID {
			fields["supplier_id"] = "proveedor inexistente"
		} else if supplierName == "" {
			supplierName = supplier.Name
		}
	}
	if supplierName == "" {
		fields["supplier_name"] = "el proveedor es obligatorio"
	}
	if len(in.Items) == 0 {
		fields["items"] = "la orden necesita al menos una línea"
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			fields[fmt.Sprintf("items[%d].product_id", i)] = "producto obligatorio"
			continue
		}
		if item.Quantity <= 0 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "la cantidad debe ser mayor que cero"
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.OrgID != orgID {
			fields[fmt.Sprintf("items[%d].product_id", i)] = "producto inexistente"
		}
	}
	if len(fields) > 0 {
		return nil, fields
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		OrderNumber:  generateOrderNumber(now),
		SupplierID:   in.SupplierID,
		SupplierName: supplierName,
		Status:       entity.POStatusPending,
		Notes:        in.Notes,
		ExpectedAt:   in.ExpectedAt,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	total := decimal.Zero
	for _, item := range in.Items {
		line := entity.PurchaseOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
		order.Items = append(order.Items, line)
	}
	order.TotalAmount = total

	err := uc.txRunner.RunPurchase(ctx, func(poRepo repository.PurchaseOrderRepository) error {
		return poRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden con sus líneas; nil si no existe o es ajena.
func (uc *PurchaseOrderUseCase) GetByID(orgID, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, nil
	}
	return toPurchaseOrderResponse(order), nil
}

// GetEntity devuelve la entidad completa para consumo interno (PDF).
func (uc *PurchaseOrderUseCase) GetEntity(orgID, id string) (*entity.PurchaseOrder, error) {
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List lista las órdenes de la organización, con filtro opcional por estado.
func (uc *PurchaseOrderUseCase) List(orgID, status string, limit, offset int) ([]dto.PurchaseOrderResponse, error) {
	if status != "" && !validPOStatus(status) {
		return nil, domain.FieldErrors{"status": "estado desconocido"}
	}
	orders, err := uc.poRepo.ListByOrg(orgID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toPurchaseOrderResponse(o))
	}
	return items, nil
}

// UpdateStatus avanza el estado de la orden siguiendo las transiciones
// permitidas. Las transiciones inválidas devuelven ErrConflict. Al pasar a
// received, cada línea queda con su cantidad recibida completa.
func (uc *PurchaseOrderUseCase) UpdateStatus(orgID, id, newStatus string) (*dto.PurchaseOrderResponse, error) {
	if !validPOStatus(newStatus) {
		return nil, domain.FieldErrors{"status": "estado desconocido"}
	}
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, nil
	}
	if !transitionAllowed(order.Status, newStatus) {
		return nil, domain.ErrConflict
	}
	if err := uc.poRepo.UpdateStatus(id, newStatus); err != nil {
		return nil, err
	}
	if newStatus == entity.POStatusReceived {
		for i := range order.Items {
			item := &order.Items[i]
			if err := uc.poRepo.UpdateItemReceived(item.ID, item.Quantity); err != nil {
				return nil, err
			}
			item.ReceivedQuantity = item.Quantity
		}
	}
	order.Status = newStatus
	order.UpdatedAt = time.Now()
	return toPurchaseOrderResponse(order), nil
}

func validPOStatus(status string) bool {
	_, ok := poTransitions[status]
	return ok
}

func transitionAllowed(from, to string) bool {
	for _, s := range poTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// generateOrderNumber número legible por fecha más sufijo aleatorio corto.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitCost:         it.UnitCost,
			ReceivedQuantity: it.ReceivedQuantity,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		OrgID:        o.OrgID,
		OrderNumber:  o.OrderNumber,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		ExpectedAt:   o.ExpectedAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Items:        items,
	}
}
