package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	// GetPrimary devuelve la ubicación primaria de la organización, o nil si no existe.
	GetPrimary(orgID string) (*entity.Location, error)
	// ClearPrimary desmarca la primaria actual (para que otra pueda tomar el rol).
	ClearPrimary(orgID string) error
	Update(location *entity.Location) error
	ListByOrg(orgID string) ([]*entity.Location, error)
	CountByOrg(orgID string) (int, error)
	Delete(id string) error
}
