package inventory

import (
	"context"

	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		historyRepo repository.StockHistoryRepository,
		alertRepo repository.AlertRepository,
	) error) error

	// RunTransfer variante con el repo de traslados para aplicar salida y
	// entrada en la misma transacción.
	RunTransfer(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		historyRepo repository.StockHistoryRepository,
		transferRepo repository.StockTransferRepository,
	) error) error
}
