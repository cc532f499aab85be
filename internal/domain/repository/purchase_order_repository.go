package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
// Create inserta cabecera y líneas; debe ejecutarse dentro de una transacción
// (repos atados a tx vía TxRunner) para que sea atómico.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus líneas, o nil si no existe.
	GetByID(id string) (*entity.PurchaseOrder, error)
	ListByOrg(orgID, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error
	// UpdateItemReceived actualiza la cantidad recibida de una línea.
	UpdateItemReceived(itemID string, receivedQty int64) error
}
