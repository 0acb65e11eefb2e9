package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/access"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// MembershipTxRunner ejecuta un callback sobre el repositorio de membresías
// con garantía transaccional: o se aplican todos los cambios o ninguno.
// Lo implementan postgres.TxRunner y memstore.TxRunner.
type MembershipTxRunner interface {
	RunMemberships(ctx context.Context, fn func(memberships repository.MembershipRepository) error) error
}

// UserUseCase administración de usuarios y de sus membresías (solo admin).
type UserUseCase struct {
	repo        repository.UserRepository
	memberships repository.MembershipRepository
	orgs        repository.OrganizationRepository
	tx          MembershipTxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	repo repository.UserRepository,
	memberships repository.MembershipRepository,
	orgs repository.OrganizationRepository,
	tx MembershipTxRunner,
) *UserUseCase {
	return &UserUseCase{repo: repo, memberships: memberships, orgs: orgs, tx: tx}
}

// Create crea un usuario con password bcrypt. Email único.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCommon
	}
	if access.ParseRole(role) == access.RoleNone || role == entity.MembershipRoleViewer {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza nombre, email o rol global de un usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if access.ParseRole(*in.Role) == access.RoleNone || *in.Role == entity.MembershipRoleViewer {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List usuarios, más recientes primero.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un usuario (sus membresías caen en cascada en el store).
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// SetMemberships reemplaza la lista completa de membresías del usuario en una
// única transacción. Sustituye al borrar-e-insertar sin garantía del sistema
// original: aquí un fallo a mitad de camino revierte todo y el usuario
// conserva sus membresías anteriores.
func (uc *UserUseCase) SetMemberships(ctx context.Context, userID string, in dto.SetMembershipsRequest) ([]dto.MembershipResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	seen := make(map[string]bool, len(in.Memberships))
	for _, m := range in.Memberships {
		if m.OrganizationID == "" {
			return nil, domain.ErrInvalidInput
		}
		switch m.Role {
		case entity.MembershipRoleAdmin, entity.MembershipRoleEditor, entity.MembershipRoleViewer:
		default:
			return nil, domain.ErrInvalidInput
		}
		if seen[m.OrganizationID] {
			return nil, domain.ErrDuplicate
		}
		seen[m.OrganizationID] = true
		org, err := uc.orgs.GetByID(m.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	err = uc.tx.RunMemberships(ctx, func(memberships repository.MembershipRepository) error {
		if err := memberships.DeleteByUser(userID); err != nil {
			return err
		}
		for i, m := range in.Memberships {
			row := &entity.Membership{
				ID:             uuid.New().String(),
				UserID:         userID,
				OrganizationID: m.OrganizationID,
				Role:           m.Role,
				// Conservar el orden solicitado como orden de creación.
				CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
			}
			if err := memberships.Create(row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.ListMemberships(userID)
}

// ListMemberships membresías del usuario con el nombre de la organización resuelto.
func (uc *UserUseCase) ListMemberships(userID string) ([]dto.MembershipResponse, error) {
	list, err := uc.memberships.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		resp := dto.MembershipResponse{
			ID:             m.ID,
			UserID:         m.UserID,
			OrganizationID: m.OrganizationID,
			Role:           m.Role,
			CreatedAt:      m.CreatedAt,
		}
		if org, err := uc.orgs.GetByID(m.OrganizationID); err == nil && org != nil {
			resp.OrganizationName = org.Name
		}
		out = append(out, resp)
	}
	return out, nil
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
