package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/access"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
	"github.com/laqus/deskguard-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
// El login además resuelve la organización por defecto de la sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	scope    *scope.Resolver
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, scopeResolver *scope.Resolver, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, scope: scopeResolver, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCommon
	}
	if access.ParseRole(role) == access.RoleNone || role == entity.MembershipRoleViewer {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera el JWT y resuelve la organización por
// defecto (primera membresía). Si el usuario no tiene membresías, la sesión
// queda sin alcance y OrganizationID va vacío.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.scope.ResolveDefault(user.ID)
	if err != nil {
		// Fallo del store al listar membresías: la sesión arranca sin alcance
		// y el cliente puede reintentar con /api/scope.
		orgID = ""
	}
	return &dto.LoginResponse{
		Token:          token,
		User:           *toUserResponse(user),
		OrganizationID: orgID,
	}, nil
}

// Logout destruye la sesión de alcance del usuario.
func (uc *AuthUseCase) Logout(userID string) {
	uc.scope.Forget(userID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
