package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// StockTransferRepository define el puerto de persistencia para StockTransfer.
type StockTransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error)
}
