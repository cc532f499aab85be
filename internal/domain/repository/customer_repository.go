package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
