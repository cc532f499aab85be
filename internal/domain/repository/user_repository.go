package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndOrg(email, orgID string) (*entity.User, error)
	ListByOrg(orgID string) ([]*entity.User, error)
	CountByOrg(orgID string) (int, error)
	Update(user *entity.User) error
}
