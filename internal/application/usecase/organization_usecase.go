package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// OrganizationUseCase gestión de la organización y su equipo.
type OrganizationUseCase struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	limits   limitChecker
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	limits limitChecker,
) *OrganizationUseCase {
	return &OrganizationUseCase{orgRepo: orgRepo, userRepo: userRepo, limits: limits}
}

// Get obtiene la organización del usuario autenticado.
func (uc *OrganizationUseCase) Get(orgID string) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return toOrganizationResponse(org), nil
}

// Update actualiza los datos de la organización. Solo owner/admin llegan aquí,
// el middleware de roles filtra antes.
func (uc *OrganizationUseCase) Update(orgID string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.FieldErrors{"name": "el nombre no puede quedar vacío"}
		}
		org.Name = name
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// ListMembers lista los usuarios de la organización.
func (uc *OrganizationUseCase) ListMembers(orgID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			OrgID:     u.OrgID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return items, nil
}

// InviteMember da de alta un miembro nuevo con contraseña inicial, tras
// verificar el límite de asientos del plan y que el email no esté en uso.
func (uc *OrganizationUseCase) InviteMember(ctx context.Context, orgID string, in dto.InviteMemberRequest) (*dto.UserResponse, error) {
	if err := uc.limits.CheckResourceLimit(ctx, orgID, entity.ResourceTeamMembers); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.FieldErrors{"email": "email y password son obligatorios"}
	}
	existing, _ := uc.userRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	switch role {
	case entity.RoleAdmin, entity.RoleMember:
	case "":
		role = entity.RoleMember
	default:
		return nil, domain.FieldErrors{"role": "rol desconocido"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		OrgID:     user.OrgID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		OwnerUserID: o.OwnerUserID,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
