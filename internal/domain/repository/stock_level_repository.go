package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar stock por
// (organización, producto, ubicación). Usado dentro de transacciones para
// garantizar consistencia.
type StockLevelRepository interface {
	// Get devuelve la fila si existe, o nil si el triple no tiene stock aún.
	Get(orgID, productID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(orgID, productID, locationID string) (*entity.StockLevel, error)
	// Upsert inserta o sobreescribe solo la cantidad sobre la clave única del triple.
	Upsert(level *entity.StockLevel) error
	ListByProduct(orgID, productID string) ([]*entity.StockLevel, error)
}
