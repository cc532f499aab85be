package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
