package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

const (
	poTestOrg      = "org-po"
	poTestUser     = "user-po"
	poTestSupplier = "sup-1"
	poTestProductA = "prod-a"
	poTestProductB = "prod-b"
)

type fakePORepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (f *fakePORepo) Create(order *entity.PurchaseOrder) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return f.orders[id], nil
}

func (f *fakePORepo) ListByOrg(orgID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		if o.OrgID == orgID && (status == "" || o.Status == status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakePORepo) UpdateStatus(id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakePORepo) UpdateItemReceived(itemID string, receivedQty int64) error { return nil }

type fakePOSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakePOSupplierRepo) Create(s *entity.Supplier) error { return nil }
func (f *fakePOSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakePOSupplierRepo) Update(s *entity.Supplier) error { return nil }
func (f *fakePOSupplierRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *fakePOSupplierRepo) Delete(id string) error { return nil }

type fakePOProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakePOProductRepo) Create(p *entity.Product) error             { return nil }
func (f *fakePOProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakePOProductRepo) GetByOrgAndSKU(orgID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakePOProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakePOProductRepo) ListByOrg(orgID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakePOProductRepo) CountByOrg(orgID string) (int, error) { return 0, nil }
func (f *fakePOProductRepo) Delete(id string) error               { return nil }

type fakePOTxRunner struct {
	poRepo repository.PurchaseOrderRepository
	runs   int
}

func (f *fakePOTxRunner) RunPurchase(_ context.Context, fn func(repository.PurchaseOrderRepository) error) error {
	f.runs++
	return fn(f.poRepo)
}

func newPOFixture() (*PurchaseOrderUseCase, *fakePORepo, *fakePOTxRunner) {
	poRepo := newFakePORepo()
	txRunner := &fakePOTxRunner{poRepo: poRepo}
	supplierRepo := &fakePOSupplierRepo{suppliers: map[string]*entity.Supplier{
		poTestSupplier: {ID: poTestSupplier, OrgID: poTestOrg, Name: "Aceros del Sur"},
	}}
	productRepo := &fakePOProductRepo{products: map[string]*entity.Product{
		poTestProductA: {ID: poTestProductA, OrgID: poTestOrg},
		poTestProductB: {ID: poTestProductB, OrgID: poTestOrg},
	}}
	uc := NewPurchaseOrderUseCase(txRunner, poRepo, supplierRepo, productRepo)
	return uc, poRepo, txRunner
}

func TestCreatePurchaseOrder_TotalDerivado(t *testing.T) {
	uc, poRepo, txRunner := newPOFixture()

	res, err := uc.Create(context.Background(), poTestOrg, poTestUser, dto.CreatePurchaseOrderRequest{
		SupplierID: poTestSupplier,
		Items: []dto.CreatePurchaseOrderItem{
			{ProductID: poTestProductA, Quantity: 10, UnitCost: decimal.RequireFromString("2.50")},
			{ProductID: poTestProductB, Quantity: 3, UnitCost: decimal.RequireFromString("7.00")},
		},
	})

	require.NoError(t, err)
	// 10×2.50 + 3×7.00 = 46.00
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("46.00")),
		"total %s", res.TotalAmount)
	assert.Equal(t, entity.POStatusPending, res.Status)
	assert.Equal(t, "Aceros del Sur", res.SupplierName, "toma el nombre del proveedor registrado")
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, txRunner.runs, "cabecera y líneas en una sola transacción")

	stored := poRepo.orders[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, poTestUser, stored.CreatedBy)
	assert.NotEmpty(t, stored.OrderNumber)
}

func TestCreatePurchaseOrder_ValidacionPorCampo(t *testing.T) {
	uc, _, txRunner := newPOFixture()

	_, err := uc.Create(context.Background(), poTestOrg, poTestUser, dto.CreatePurchaseOrderRequest{})

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "supplier_name")
	assert.Contains(t, fields, "items")
	assert.Zero(t, txRunner.runs, "no debe abrir transacción con entrada inválida")
}

func TestCreatePurchaseOrder_LineaInvalida(t *testing.T) {
	uc, _, _ := newPOFixture()

	_, err := uc.Create(context.Background(), poTestOrg, poTestUser, dto.CreatePurchaseOrderRequest{
		SupplierName: "Proveedor manual",
		Items: []dto.CreatePurchaseOrderItem{
			{ProductID: poTestProductA, Quantity: 0},
			{ProductID: "prod-ajeno", Quantity: 5},
		},
	})

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "items[0].quantity")
	assert.Contains(t, fields, "items[1].product_id")
}

func TestCreatePurchaseOrder_ProveedorDeOtraOrg(t *testing.T) {
	uc, _, _ := newPOFixture()

	_, err := uc.Create(context.Background(), "org-ajena", poTestUser, dto.CreatePurchaseOrderRequest{
		SupplierID: poTestSupplier,
		Items: []dto.CreatePurchaseOrderItem{
			{ProductID: poTestProductA, Quantity: 1},
		},
	})

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "supplier_id")
}

func TestUpdatePOStatus_Transiciones(t *testing.T) {
	uc, _, _ := newPOFixture()

	created, err := uc.Create(context.Background(), poTestOrg, poTestUser, dto.CreatePurchaseOrderRequest{
		SupplierName: "Proveedor manual",
		Items: []dto.CreatePurchaseOrderItem{
			{ProductID: poTestProductA, Quantity: 1, UnitCost: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)

	res, err := uc.UpdateStatus(poTestOrg, created.ID, entity.POStatusOrdered)
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusOrdered, res.Status)

	res, err = uc.UpdateStatus(poTestOrg, created.ID, entity.POStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusReceived, res.Status)
	// Al recibir, cada línea queda con su cantidad recibida completa.
	require.Len(t, res.Items, 1)
	assert.Equal(t, res.Items[0].Quantity, res.Items[0].ReceivedQuantity)

	// Una orden recibida es terminal.
	_, err = uc.UpdateStatus(poTestOrg, created.ID, entity.POStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdatePOStatus_EstadoDesconocido(t *testing.T) {
	uc, _, _ := newPOFixture()

	_, err := uc.UpdateStatus(poTestOrg, "po-x", "shipped")

	var fields domain.FieldErrors
	assert.True(t, errors.As(err, &fields))
}

func TestUpdatePOStatus_OrdenAjena(t *testing.T) {
	uc, _, _ := newPOFixture()

	created, err := uc.Create(context.Background(), poTestOrg, poTestUser, dto.CreatePurchaseOrderRequest{
		SupplierName: "Proveedor manual",
		Items: []dto.CreatePurchaseOrderItem{
			{ProductID: poTestProductA, Quantity: 1},
		},
	})
	require.NoError(t, err)

	res, err := uc.UpdateStatus("org-ajena", created.ID, entity.POStatusOrdered)
	require.NoError(t, err)
	assert.Nil(t, res, "orden de otra organización se trata como inexistente")
}
