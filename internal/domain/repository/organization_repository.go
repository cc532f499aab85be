package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	Update(org *entity.Organization) error
}
