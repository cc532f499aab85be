package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones. Mantiene el invariante
// de a lo sumo una ubicación primaria por organización.
type LocationUseCase struct {
	repo   repository.LocationRepository
	limits limitChecker
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, limits limitChecker) *LocationUseCase {
	return &LocationUseCase{repo: repo, limits: limits}
}

// Create crea una ubicación tras verificar el límite del plan. Si se marca
// primaria, desmarca la primaria anterior.
func (uc *LocationUseCase) Create(ctx context.Context, orgID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := uc.limits.CheckResourceLimit(ctx, orgID, entity.ResourceLocations); err != nil {
		return nil, err
	}
	if in.IsPrimary {
		if err := uc.repo.ClearPrimary(orgID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      in.Name,
		Address:   in.Address,
		IsPrimary: in.IsPrimary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación de la organización; nil si no existe o es ajena.
func (uc *LocationUseCase) GetByID(orgID, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil || location.OrgID != orgID {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación. Marcar IsPrimary=true mueve el rol primario.
func (uc *LocationUseCase) Update(orgID, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil || location.OrgID != orgID {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.IsPrimary != nil && *in.IsPrimary && !location.IsPrimary {
		if err := uc.repo.ClearPrimary(orgID); err != nil {
			return nil, err
		}
		location.IsPrimary = true
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista las ubicaciones de la organización.
func (uc *LocationUseCase) List(orgID string) ([]dto.LocationResponse, error) {
	list, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación de la organización.
func (uc *LocationUseCase) Delete(orgID, id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil || location.OrgID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		OrgID:     l.OrgID,
		Name:      l.Name,
		Address:   l.Address,
		IsPrimary: l.IsPrimary,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
