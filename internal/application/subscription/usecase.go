package subscription

import (
	"context"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// UseCase expone el snapshot de suscripción y la verificación de límites por
// recurso. Los conteos de uso se consultan frescos en cada verificación.
type UseCase struct {
	subRepo      repository.SubscriptionRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	subRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		subRepo:      subRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// CheckResourceLimit verifica si la organización puede crear un recurso más.
// Devuelve ErrLimitReached si el plan lo impide. Sin caching: el uso cambia
// entre llamadas.
func (uc *UseCase) CheckResourceLimit(ctx context.Context, orgID, resource string) error {
	sub, err := uc.subRepo.GetByOrg(orgID)
	if err != nil {
		return err
	}
	if sub == nil {
		// Sin suscripción registrada no se restringe (límite ausente = ilimitado).
		return nil
	}
	usage, err := uc.usageFor(orgID, resource)
	if err != nil {
		return err
	}
	if LimitReached(sub.LimitFor(resource), usage) {
		return domain.ErrLimitReached
	}
	return nil
}

// Snapshot devuelve el plan con el consumo actual de cada recurso limitado.
func (uc *UseCase) Snapshot(ctx context.Context, orgID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subRepo.GetByOrg(orgID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}

	members, err := uc.usageFor(orgID, entity.ResourceTeamMembers)
	if err != nil {
		return nil, err
	}
	products, err := uc.usageFor(orgID, entity.ResourceProducts)
	if err != nil {
		return nil, err
	}
	locations, err := uc.usageFor(orgID, entity.ResourceLocations)
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{
		ID:     sub.ID,
		OrgID:  sub.OrgID,
		Plan:   sub.Plan,
		Status: sub.Status,
		TeamMembers: dto.ResourceUsage{
			Used: members, Limit: sub.MaxTeamMembers,
			Reached: LimitReached(sub.MaxTeamMembers, members),
		},
		Products: dto.ResourceUsage{
			Used: products, Limit: sub.MaxProducts,
			Reached: LimitReached(sub.MaxProducts, products),
		},
		Locations: dto.ResourceUsage{
			Used: locations, Limit: sub.MaxLocations,
			Reached: LimitReached(sub.MaxLocations, locations),
		},
		RenewsAt: sub.RenewsAt,
	}, nil
}

func (uc *UseCase) usageFor(orgID, resource string) (int, error) {
	switch resource {
	case entity.ResourceTeamMembers:
		return uc.userRepo.CountByOrg(orgID)
	case entity.ResourceProducts:
		return uc.productRepo.CountByOrg(orgID)
	case entity.ResourceLocations:
		return uc.locationRepo.CountByOrg(orgID)
	default:
		return 0, domain.ErrInvalidInput
	}
}
