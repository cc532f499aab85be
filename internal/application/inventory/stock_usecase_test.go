package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot/internal/application/inventory"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	levels map[string]*entity.StockLevel // clave org|producto|ubicación
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: map[string]*entity.StockLevel{}}
}

func key(orgID, productID, locationID string) string {
	return orgID + "|" + productID + "|" + locationID
}

func (f *fakeStockRepo) Get(orgID, productID, locationID string) (*entity.StockLevel, error) {
	if l, ok := f.levels[key(orgID, productID, locationID)]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStockRepo) GetForUpdate(orgID, productID, locationID string) (*entity.StockLevel, error) {
	return f.Get(orgID, productID, locationID)
}

func (f *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	f.levels[key(level.OrgID, level.ProductID, level.LocationID)] = &cp
	return nil
}

func (f *fakeStockRepo) ListByProduct(orgID, productID string) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, l := range f.levels {
		if l.OrgID == orgID && l.ProductID == productID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	records []*entity.StockHistory
}

func (f *fakeHistoryRepo) Create(r *entity.StockHistory) error {
	f.records = append(f.records, r)
	return nil
}

func (f *fakeHistoryRepo) ListByProduct(orgID, productID string, limit, offset int) ([]*entity.StockHistory, error) {
	return f.records, nil
}

type fakeAlertRepo struct {
	alerts []*entity.Alert
}

func (f *fakeAlertRepo) Create(a *entity.Alert) error {
	f.alerts = append(f.alerts, a)
	return nil
}

func (f *fakeAlertRepo) ListByOrg(orgID string, unreadOnly bool, limit, offset int) ([]*entity.Alert, error) {
	return f.alerts, nil
}

func (f *fakeAlertRepo) MarkRead(orgID string, ids []string) (int, error) { return 0, nil }

func (f *fakeAlertRepo) HasUnread(orgID, productID, alertType string) (bool, error) {
	for _, a := range f.alerts {
		if a.OrgID == orgID && a.ProductID == productID && a.Type == alertType && !a.IsRead {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) CountUnread(orgID string) (int, error) {
	n := 0
	for _, a := range f.alerts {
		if a.OrgID == orgID && !a.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByOrgAndSKU(orgID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) ListByOrg(orgID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) CountByOrg(orgID string) (int, error) { return len(f.products), nil }
func (f *fakeProductRepo) Delete(id string) error               { return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) GetPrimary(orgID string) (*entity.Location, error) {
	for _, l := range f.locations {
		if l.OrgID == orgID && l.IsPrimary {
			return l, nil
		}
	}
	return nil, nil
}
func (f *fakeLocationRepo) ClearPrimary(orgID string) error { return nil }
func (f *fakeLocationRepo) Update(l *entity.Location) error { return nil }
func (f *fakeLocationRepo) ListByOrg(orgID string) ([]*entity.Location, error) {
	return nil, nil
}
func (f *fakeLocationRepo) CountByOrg(orgID string) (int, error) { return len(f.locations), nil }
func (f *fakeLocationRepo) Delete(id string) error               { return nil }

type fakeTransferRepo struct {
	transfers []*entity.StockTransfer
}

func (f *fakeTransferRepo) Create(t *entity.StockTransfer) error {
	f.transfers = append(f.transfers, t)
	return nil
}

func (f *fakeTransferRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	return f.transfers, nil
}

// fakeTxRunner ejecuta los callbacks directamente, sin transacción real.
type fakeTxRunner struct {
	stock    *fakeStockRepo
	history  *fakeHistoryRepo
	alerts   *fakeAlertRepo
	transfer *fakeTransferRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.StockLevelRepository,
	repository.StockHistoryRepository,
	repository.AlertRepository,
) error) error {
	return fn(f.stock, f.history, f.alerts)
}

func (f *fakeTxRunner) RunTransfer(ctx context.Context, fn func(
	repository.StockLevelRepository,
	repository.StockHistoryRepository,
	repository.StockTransferRepository,
) error) error {
	return fn(f.stock, f.history, f.transfer)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testOrg      = "org-1"
	testUser     = "user-1"
	testProduct  = "prod-1"
	testLocation = "loc-1"
)

type fixture struct {
	uc        *inventory.StockUseCase
	transfers *inventory.TransferUseCase
	stock     *fakeStockRepo
	history   *fakeHistoryRepo
	alerts    *fakeAlertRepo
	locations *fakeLocationRepo
	products  *fakeProductRepo
}

func newFixture(t *testing.T, reorderPoint int64) *fixture {
	t.Helper()
	stock := newFakeStockRepo()
	history := &fakeHistoryRepo{}
	alerts := &fakeAlertRepo{}
	transfers := &fakeTransferRepo{}
	runner := &fakeTxRunner{stock: stock, history: history, alerts: alerts, transfer: transfers}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProduct: {ID: testProduct, OrgID: testOrg, SKU: "SKU-1", ReorderPoint: reorderPoint},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		testLocation: {ID: testLocation, OrgID: testOrg, Name: "Bodega Norte", IsPrimary: true},
	}}

	return &fixture{
		uc:        inventory.NewStockUseCase(runner, products, locations, stock, history),
		transfers: inventory.NewTransferUseCase(runner, products, locations, transfers),
		stock:     stock,
		history:   history,
		alerts:    alerts,
		locations: locations,
		products:  products,
	}
}

func (fx *fixture) apply(t *testing.T, delta int64, changeType string) *entity.StockLevel {
	t.Helper()
	level, err := fx.uc.ApplyChange(context.Background(), inventory.StockChangeInput{
		OrgID:      testOrg,
		UserID:     testUser,
		ProductID:  testProduct,
		LocationID: testLocation,
		Delta:      delta,
		ChangeType: changeType,
	})
	require.NoError(t, err)
	require.NotNil(t, level)
	return level
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de cantidad
// ──────────────────────────────────────────────────────────────────────────────

// Con fila existente: add suma, remove resta con recorte a cero.
func TestApplyChange_FilaExistente(t *testing.T) {
	casos := []struct {
		nombre     string
		inicial    int64
		delta      int64
		changeType string
		esperado   int64
	}{
		{"add suma", 5, 10, "add", 15},
		{"remove resta", 10, 3, "remove", 7},
		{"remove recorta a cero", 4, 100, "remove", 0},
		{"remove exacto llega a cero", 6, 6, "remove", 0},
		{"tipo desconocido asigna delta", 50, 12, "set", 12},
		{"tipo vacío asigna delta", 50, 9, "", 9},
		{"add con delta cero no cambia", 5, 0, "add", 5},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			fx := newFixture(t, 0)
			fx.apply(t, c.inicial, "add") // siembra la fila (ausente+add = delta)
			level := fx.apply(t, c.delta, c.changeType)
			assert.Equal(t, c.esperado, level.Quantity)
		})
	}
}

// Sin fila previa: tanto add como remove dejan exactamente el delta.
// El remove sin fila NO recorta: conserva el delta crudo (contrato del endpoint).
func TestApplyChange_SinFilaPrevia(t *testing.T) {
	casos := []struct {
		nombre     string
		delta      int64
		changeType string
		esperado   int64
	}{
		{"add deja el delta", 10, "add", 10},
		{"remove deja el delta crudo", 10, "remove", 10},
		{"tipo desconocido deja el delta", 7, "whatever", 7},
		{"delta negativo se asigna literal", -5, "set", -5},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			fx := newFixture(t, 0)
			level := fx.apply(t, c.delta, c.changeType)
			assert.Equal(t, c.esperado, level.Quantity)
		})
	}
}

// Secuencia completa: +10 add → 10; 3 remove → 7; 100 remove → 0.
func TestApplyChange_SecuenciaCompleta(t *testing.T) {
	fx := newFixture(t, 0)

	assert.Equal(t, int64(10), fx.apply(t, 10, "add").Quantity)
	assert.Equal(t, int64(7), fx.apply(t, 3, "remove").Quantity)
	assert.Equal(t, int64(0), fx.apply(t, 100, "remove").Quantity)

	// Cada paso dejó su rastro en la bitácora.
	require.Len(t, fx.history.records, 3)
	assert.Equal(t, int64(0), fx.history.records[0].PreviousQuantity)
	assert.Equal(t, int64(10), fx.history.records[0].NewQuantity)
	assert.Equal(t, int64(10), fx.history.records[1].PreviousQuantity)
	assert.Equal(t, int64(7), fx.history.records[1].NewQuantity)
	assert.Equal(t, int64(0), fx.history.records[2].NewQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de ubicación
// ──────────────────────────────────────────────────────────────────────────────

// Sin ubicación en la entrada se usa la primaria de la organización.
func TestApplyChange_UsaUbicacionPrimaria(t *testing.T) {
	fx := newFixture(t, 0)
	level, err := fx.uc.ApplyChange(context.Background(), inventory.StockChangeInput{
		OrgID:      testOrg,
		UserID:     testUser,
		ProductID:  testProduct,
		Delta:      4,
		ChangeType: "add",
	})
	require.NoError(t, err)
	assert.Equal(t, testLocation, level.LocationID)
}

// Sin ubicación primaria se crea "Main Warehouse" automáticamente.
func TestApplyChange_CreaMainWarehouse(t *testing.T) {
	fx := newFixture(t, 0)
	delete(fx.locations.locations, testLocation)

	level, err := fx.uc.ApplyChange(context.Background(), inventory.StockChangeInput{
		OrgID:      testOrg,
		UserID:     testUser,
		ProductID:  testProduct,
		Delta:      4,
		ChangeType: "add",
	})
	require.NoError(t, err)

	created := fx.locations.locations[level.LocationID]
	require.NotNil(t, created)
	assert.Equal(t, entity.DefaultLocationName, created.Name)
	assert.True(t, created.IsPrimary)
}

// Ubicación de otra organización → acceso denegado.
func TestApplyChange_UbicacionAjena(t *testing.T) {
	fx := newFixture(t, 0)
	fx.locations.locations["loc-ajena"] = &entity.Location{ID: "loc-ajena", OrgID: "otra-org"}

	_, err := fx.uc.ApplyChange(context.Background(), inventory.StockChangeInput{
		OrgID:      testOrg,
		UserID:     testUser,
		ProductID:  testProduct,
		LocationID: "loc-ajena",
		Delta:      1,
		ChangeType: "add",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Producto inexistente → not found.
func TestApplyChange_ProductoInexistente(t *testing.T) {
	fx := newFixture(t, 0)
	_, err := fx.uc.ApplyChange(context.Background(), inventory.StockChangeInput{
		OrgID:      testOrg,
		UserID:     testUser,
		ProductID:  "no-existe",
		Delta:      1,
		ChangeType: "add",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

// Llegar a cero genera alerta out_of_stock; bajo el punto de reorden, low_stock.
func TestApplyChange_Alertas(t *testing.T) {
	fx := newFixture(t, 5)

	fx.apply(t, 20, "add")
	require.Empty(t, fx.alerts.alerts)

	fx.apply(t, 16, "remove") // queda 4 ≤ reorden 5
	require.Len(t, fx.alerts.alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, fx.alerts.alerts[0].Type)

	fx.apply(t, 10, "remove") // queda 0
	require.Len(t, fx.alerts.alerts, 2)
	assert.Equal(t, entity.AlertTypeOutOfStock, fx.alerts.alerts[1].Type)
}

// No se duplican alertas no leídas del mismo producto y tipo.
func TestApplyChange_AlertaNoDuplicada(t *testing.T) {
	fx := newFixture(t, 5)

	fx.apply(t, 20, "add")
	fx.apply(t, 17, "remove") // 3: low_stock
	fx.apply(t, 1, "remove")  // 2: sigue low_stock, no duplica

	require.Len(t, fx.alerts.alerts, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_AplicaAmbosLados(t *testing.T) {
	fx := newFixture(t, 0)
	fx.locations.locations["loc-2"] = &entity.Location{ID: "loc-2", OrgID: testOrg, Name: "Bodega Sur"}
	fx.apply(t, 10, "add")

	_, err := fx.transfers.Transfer(context.Background(), inventory.TransferInput{
		OrgID:          testOrg,
		UserID:         testUser,
		ProductID:      testProduct,
		FromLocationID: testLocation,
		ToLocationID:   "loc-2",
		Quantity:       4,
	})
	require.NoError(t, err)

	origen, _ := fx.stock.Get(testOrg, testProduct, testLocation)
	destino, _ := fx.stock.Get(testOrg, testProduct, "loc-2")
	assert.Equal(t, int64(6), origen.Quantity)
	assert.Equal(t, int64(4), destino.Quantity)
}

func TestTransfer_MismaUbicacionInvalida(t *testing.T) {
	fx := newFixture(t, 0)
	_, err := fx.transfers.Transfer(context.Background(), inventory.TransferInput{
		OrgID:          testOrg,
		ProductID:      testProduct,
		FromLocationID: testLocation,
		ToLocationID:   testLocation,
		Quantity:       1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_OrigenSinStockRecortaACero(t *testing.T) {
	fx := newFixture(t, 0)
	fx.locations.locations["loc-2"] = &entity.Location{ID: "loc-2", OrgID: testOrg}

	_, err := fx.transfers.Transfer(context.Background(), inventory.TransferInput{
		OrgID:          testOrg,
		UserID:         testUser,
		ProductID:      testProduct,
		FromLocationID: testLocation,
		ToLocationID:   "loc-2",
		Quantity:       5,
	})
	require.NoError(t, err)

	origen, _ := fx.stock.Get(testOrg, testProduct, testLocation)
	destino, _ := fx.stock.Get(testOrg, testProduct, "loc-2")
	assert.Equal(t, int64(0), origen.Quantity, "la salida sin stock recorta a cero")
	assert.Equal(t, int64(5), destino.Quantity)
}
