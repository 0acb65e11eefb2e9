package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías, siempre dentro de la
// organización activa.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría en la organización indicada.
func (uc *CategoryUseCase) Create(orgID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.Category{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Description:    in.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetByID obtiene una categoría de la organización. Una categoría de otra
// organización se trata como inexistente.
func (uc *CategoryUseCase) GetByID(orgID, id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.OrganizationID != orgID {
		return nil, nil
	}
	return toCategoryResponse(cat), nil
}

// Update actualiza una categoría de la organización (campos opcionales).
func (uc *CategoryUseCase) Update(orgID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List categorías de la organización ordenadas por nombre.
func (uc *CategoryUseCase) List(orgID string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una categoría de la organización. Si todavía la referencia
// un modelo o un producto, el store responde ErrConflict y no se borra nada.
func (uc *CategoryUseCase) Delete(orgID, id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil || cat.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Description:    c.Description,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
