package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
	"github.com/tu-usuario/stockpilot/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Límites del plan trial asignado al registrarse.
const (
	trialMaxTeamMembers = 3
	trialMaxProducts    = 100
	trialMaxLocations   = 2
)

// AuthUseCase casos de uso de autenticación: registro de organización y login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	orgRepo      repository.OrganizationRepository
	subRepo      repository.SubscriptionRepository
	locationRepo repository.LocationRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	subRepo repository.SubscriptionRepository,
	locationRepo repository.LocationRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		subRepo:      subRepo,
		locationRepo: locationRepo,
		jwtCfg:       jwtCfg,
	}
}

// Register da de alta una organización nueva con su usuario propietario,
// la suscripción trial y la ubicación primaria por defecto. Devuelve el
// token de sesión ya generado para no exigir un login inmediato.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.OrgName) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.OrgName),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	name := in.Name
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		OrgID:        org.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleOwner,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	org.OwnerUserID = user.ID

	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	renews := now.AddDate(0, 1, 0)
	sub := &entity.Subscription{
		ID:             uuid.New().String(),
		OrgID:          org.ID,
		Plan:           "trial",
		Status:         "active",
		MaxTeamMembers: trialMaxTeamMembers,
		MaxProducts:    trialMaxProducts,
		MaxLocations:   trialMaxLocations,
		RenewsAt:       &renews,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.subRepo.Create(sub); err != nil {
		return nil, err
	}

	primary := &entity.Location{
		ID:        uuid.New().String(),
		OrgID:     org.ID,
		Name:      entity.DefaultLocationName,
		IsPrimary: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(primary); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, org.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password, genera el token de sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrgID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		OrgID:     u.OrgID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
