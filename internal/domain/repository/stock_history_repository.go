package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// StockHistoryRepository define el puerto para la bitácora de cambios de stock
// (solo inserción y lectura).
type StockHistoryRepository interface {
	Create(record *entity.StockHistory) error
	ListByProduct(orgID, productID string, limit, offset int) ([]*entity.StockHistory, error)
}
