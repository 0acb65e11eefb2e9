package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// ModelUseCase casos de uso CRUD para modelos. Un modelo siempre referencia
// una categoría de su misma organización.
type ModelUseCase struct {
	repo       repository.ModelRepository
	categories repository.CategoryRepository
}

// NewModelUseCase construye el caso de uso.
func NewModelUseCase(repo repository.ModelRepository, categories repository.CategoryRepository) *ModelUseCase {
	return &ModelUseCase{repo: repo, categories: categories}
}

// Create crea un modelo. La categoría debe existir en la misma organización;
// una referencia cruzada entre organizaciones es entrada inválida.
func (uc *ModelUseCase) Create(orgID string, in dto.CreateModelRequest) (*dto.ModelResponse, error) {
	if in.Name == "" || in.Brand == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.OrganizationID != orgID {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	model := &entity.Model{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Brand:          in.Brand,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(model); err != nil {
		return nil, err
	}
	return toModelResponse(model), nil
}

// GetByID obtiene un modelo de la organización.
func (uc *ModelUseCase) GetByID(orgID, id string) (*dto.ModelResponse, error) {
	model, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if model == nil || model.OrganizationID != orgID {
		return nil, nil
	}
	return toModelResponse(model), nil
}

// Update actualiza un modelo. Si cambia la categoría, se revalida que
// pertenezca a la misma organización.
func (uc *ModelUseCase) Update(orgID, id string, in dto.UpdateModelRequest) (*dto.ModelResponse, error) {
	model, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if model == nil || model.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		model.Name = *in.Name
	}
	if in.Brand != nil {
		if *in.Brand == "" {
			return nil, domain.ErrInvalidInput
		}
		model.Brand = *in.Brand
	}
	if in.CategoryID != nil {
		cat, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.OrganizationID != orgID {
			return nil, domain.ErrInvalidInput
		}
		model.CategoryID = *in.CategoryID
	}
	model.UpdatedAt = time.Now()
	if err := uc.repo.Update(model); err != nil {
		return nil, err
	}
	return toModelResponse(model), nil
}

// List modelos de la organización ordenados por nombre.
func (uc *ModelUseCase) List(orgID string, limit, offset int) (*dto.ModelListResponse, error) {
	list, err := uc.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModelResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toModelResponse(m))
	}
	return &dto.ModelListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un modelo de la organización. ErrConflict si un producto
// todavía lo referencia.
func (uc *ModelUseCase) Delete(orgID, id string) error {
	model, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if model == nil || model.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toModelResponse(m *entity.Model) *dto.ModelResponse {
	if m == nil {
		return nil
	}
	return &dto.ModelResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Brand:          m.Brand,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
