package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// TransferUseCase traslada stock entre dos ubicaciones de la misma
// organización en una sola transacción: salida en origen (recortada a cero)
// y entrada en destino.
type TransferUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	transferRepo repository.StockTransferRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	transferRepo repository.StockTransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		transferRepo: transferRepo,
	}
}

// TransferInput entrada para un traslado entre ubicaciones.
type TransferInput struct {
	OrgID          string
	UserID         string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       int64
	Notes          string
}

// Transfer valida y aplica el traslado. La cantidad debe ser positiva y las
// ubicaciones distintas y de la organización.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*entity.StockTransfer, error) {
	if input.ProductID == "" || input.FromLocationID == "" || input.ToLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.FromLocationID == input.ToLocationID || input.Quantity <= 0 {
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
	for _, locID := range []string{input.FromLocationID, input.ToLocationID} {
		location, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		if location.OrgID != input.OrgID {
			return nil, domain.ErrForbidden
		}
	}

	transfer := &entity.StockTransfer{
		ID:             uuid.New().String(),
		OrgID:          input.OrgID,
		ProductID:      input.ProductID,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		Quantity:       input.Quantity,
		Notes:          input.Notes,
		CreatedBy:      input.UserID,
		CreatedAt:      time.Now(),
	}

	err = uc.txRunner.RunTransfer(ctx, func(
		stockRepo repository.StockLevelRepository,
		historyRepo repository.StockHistoryRepository,
		transferRepo repository.StockTransferRepository,
	) error {
		if err := applyTransferSide(stockRepo, historyRepo, input, input.FromLocationID, entity.ChangeTypeRemove); err != nil {
			return err
		}
		if err := applyTransferSide(stockRepo, historyRepo, input, input.ToLocationID, entity.ChangeTypeAdd); err != nil {
			return err
		}
		return transferRepo.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// applyTransferSide aplica un lado del traslado con la semántica explícita de
// traslados: fila ausente cuenta como cantidad cero y la salida recorta a cero
// (a diferencia del endpoint de deltas, que asigna el delta crudo sin fila).
func applyTransferSide(
	stockRepo repository.StockLevelRepository,
	historyRepo repository.StockHistoryRepository,
	input TransferInput,
	locationID, changeType string,
) error {
	level, err := stockRepo.GetForUpdate(input.OrgID, input.ProductID, locationID)
	if err != nil {
		return err
	}
	var previous int64
	if level != nil {
		previous = level.Quantity
	}

	newQty := previous + input.Quantity
	if changeType == entity.ChangeTypeRemove {
		newQty = previous - input.Quantity
		if newQty < 0 {
			newQty = 0
		}
	}

	if level == nil {
		level = &entity.StockLevel{
			OrgID:      input.OrgID,
			ProductID:  input.ProductID,
			LocationID: locationID,
		}
	}
	level.Quantity = newQty
	level.UpdatedAt = time.Now()
	if err := stockRepo.Upsert(level); err != nil {
		return err
	}

	return historyRepo.Create(&entity.StockHistory{
		ID:               uuid.New().String(),
		OrgID:            input.OrgID,
		ProductID:        input.ProductID,
		LocationID:       locationID,
		ChangeType:       changeType,
		Delta:            input.Quantity,
		PreviousQuantity: previous,
		NewQuantity:      newQty,
		CreatedBy:        input.UserID,
		CreatedAt:        time.Now(),
	})
}

// List devuelve los traslados de la organización.
func (uc *TransferUseCase) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	return uc.transferRepo.ListByOrg(orgID, limit, offset)
}
