package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// StockUseCase aplica deltas de stock sobre (organización, producto, ubicación)
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) y upsert
// sobre la clave única del triple.
type StockUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockLevelRepository
	historyRepo  repository.StockHistoryRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockLevelRepository,
	historyRepo repository.StockHistoryRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		historyRepo:  historyRepo,
	}
}

// StockChangeInput entrada para aplicar un delta de stock.
// LocationID vacío usa la ubicación primaria de la organización (creando
// "Main Warehouse" si no existe ninguna).
type StockChangeInput struct {
	OrgID      string
	UserID     string
	ProductID  string
	LocationID string
	Delta      int64
	ChangeType string // add | remove; cualquier otro valor asigna Delta directo
}

// ApplyChange calcula y persiste la nueva cantidad según el tipo de cambio:
//   - fila existente y "add":    cantidad + delta
//   - fila existente y "remove": max(0, cantidad - delta), nunca negativa
//   - en cualquier otro caso (fila ausente o tipo desconocido): delta tal cual
//
// El último caso implica que un "remove" sobre un triple sin fila deja la
// cantidad en el delta crudo; es comportamiento contractual del endpoint y se
// conserva tal cual.
func (uc *StockUseCase) ApplyChange(ctx context.Context, input StockChangeInput) (*entity.StockLevel, error) {
	if input.OrgID == "" || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OrgID != input.OrgID {
		return nil, domain.ErrForbidden
	}

	location, err := uc.resolveLocation(input.OrgID, input.LocationID)
	if err != nil {
		return nil, err
	}

	var result *entity.StockLevel
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLevelRepository,
		historyRepo repository.StockHistoryRepository,
		alertRepo repository.AlertRepository,
	) error {
		level, err := stockRepo.GetForUpdate(input.OrgID, input.ProductID, location.ID)
		if err != nil {
			return err
		}

		var previous int64
		if level != nil {
			previous = level.Quantity
		}
		newQty := reconcileQuantity(level != nil, previous, input.Delta, input.ChangeType)

		if level == nil {
			level = &entity.StockLevel{
				OrgID:      input.OrgID,
				ProductID:  input.ProductID,
				LocationID: location.ID,
			}
		}
		level.Quantity = newQty
		level.UpdatedAt = time.Now()
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}

		record := &entity.StockHistory{
			ID:               uuid.New().String(),
			OrgID:            input.OrgID,
			ProductID:        input.ProductID,
			LocationID:       location.ID,
			ChangeType:       input.ChangeType,
			Delta:            input.Delta,
			PreviousQuantity: previous,
			NewQuantity:      newQty,
			CreatedBy:        input.UserID,
			CreatedAt:        time.Now(),
		}
		if err := historyRepo.Create(record); err != nil {
			return err
		}

		if err := uc.raiseAlerts(alertRepo, product, level); err != nil {
			return err
		}

		result = level
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reconcileQuantity regla de cálculo del reconciliador. Solo el camino
// "remove" sobre fila existente recorta a cero; los demás caminos pueden
// asignar el delta literal (incluso negativo).
func reconcileQuantity(exists bool, current, delta int64, changeType string) int64 {
	switch {
	case exists && changeType == entity.ChangeTypeAdd:
		return current + delta
	case exists && changeType == entity.ChangeTypeRemove:
		if current-delta < 0 {
			return 0
		}
		return current - delta
	default:
		return delta
	}
}

// resolveLocation devuelve la ubicación indicada (validando pertenencia) o la
// primaria de la organización, creando "Main Warehouse" si no hay ninguna.
func (uc *StockUseCase) resolveLocation(orgID, locationID string) (*entity.Location, error) {
	if locationID != "" {
		location, err := uc.locationRepo.GetByID(locationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		if location.OrgID != orgID {
			return nil, domain.ErrForbidden
		}
		return location, nil
	}

	primary, err := uc.locationRepo.GetPrimary(orgID)
	if err != nil {
		return nil, err
	}
	if primary != nil {
		return primary, nil
	}

	now := time.Now()
	primary = &entity.Location{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      entity.DefaultLocationName,
		IsPrimary: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(primary); err != nil {
		return nil, fmt.Errorf("crear ubicación por defecto: %w", err)
	}
	return primary, nil
}

// raiseAlerts genera alertas de quiebre de stock: out_of_stock al llegar a
// cero, low_stock al quedar en o bajo el punto de reorden. A lo sumo una
// alerta no leída por producto y tipo.
func (uc *StockUseCase) raiseAlerts(alertRepo repository.AlertRepository, product *entity.Product, level *entity.StockLevel) error {
	reorderPoint := product.ReorderPoint
	if level.ReorderPoint != nil {
		reorderPoint = *level.ReorderPoint
	}

	var alertType, message string
	switch {
	case level.Quantity <= 0:
		alertType = entity.AlertTypeOutOfStock
		message = fmt.Sprintf("el producto %s quedó sin stock", product.SKU)
	case reorderPoint > 0 && level.Quantity <= reorderPoint:
		alertType = entity.AlertTypeLowStock
		message = fmt.Sprintf("el producto %s está en o bajo su punto de reorden (%d)", product.SKU, reorderPoint)
	default:
		return nil
	}

	exists, err := alertRepo.HasUnread(product.OrgID, product.ID, alertType)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return alertRepo.Create(&entity.Alert{
		ID:        uuid.New().String(),
		OrgID:     product.OrgID,
		ProductID: product.ID,
		Type:      alertType,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ListByProduct devuelve las filas de stock de un producto de la organización.
func (uc *StockUseCase) ListByProduct(ctx context.Context, orgID, productID string) ([]*entity.StockLevel, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	return uc.stockRepo.ListByProduct(orgID, productID)
}

// History devuelve la bitácora de movimientos de un producto, más reciente
// primero.
func (uc *StockUseCase) History(ctx context.Context, orgID, productID string, limit, offset int) ([]*entity.StockHistory, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	return uc.historyRepo.ListByProduct(orgID, productID, limit, offset)
}
