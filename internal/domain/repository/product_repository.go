package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// ProductFilter criterios de búsqueda para listados de productos.
type ProductFilter struct {
	Search   string // busca en sku y name
	Category string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByOrgAndSKU(orgID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByOrg(orgID string, filter ProductFilter) ([]*entity.Product, error)
	CountByOrg(orgID string) (int, error)
	Delete(id string) error
}
