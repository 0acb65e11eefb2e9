package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, más el ajuste rápido de
// cantidad del dashboard. La categoría del producto se deriva siempre del
// modelo para que el campo desnormalizado nunca quede inconsistente.
type ProductUseCase struct {
	repo          repository.ProductRepository
	models        repository.ModelRepository
	notifications repository.NotificationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	models repository.ModelRepository,
	notifications repository.NotificationRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, models: models, notifications: notifications}
}

// Create crea un producto. Quantity >= 0, MinQuantity >= 1, el modelo debe
// existir en la misma organización. Emite una notificación new_item.
func (uc *ProductUseCase) Create(orgID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.ModelID == "" || in.Quantity < 0 || in.MinQuantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	model, err := uc.models.GetByID(in.ModelID)
	if err != nil {
		return nil, err
	}
	if model == nil || model.OrganizationID != orgID {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		ModelID:        model.ID,
		CategoryID:     model.CategoryID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		MinQuantity:    in.MinQuantity,
		ExpiryDate:     in.ExpiryDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Value != nil {
		product.Value = decimal.NullDecimal{Decimal: *in.Value, Valid: true}
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.notify(orgID, entity.NotificationNewItem, product.ID,
		fmt.Sprintf("Novo item cadastrado: %s", product.Name))
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la organización.
func (uc *ProductUseCase) GetByID(orgID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrganizationID != orgID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos opcionales). Si cambia el modelo, la
// categoría se rederiva de él.
func (uc *ProductUseCase) Update(orgID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.ModelID != nil {
		model, err := uc.models.GetByID(*in.ModelID)
		if err != nil {
			return nil, err
		}
		if model == nil || model.OrganizationID != orgID {
			return nil, domain.ErrInvalidInput
		}
		product.ModelID = model.ID
		product.CategoryID = model.CategoryID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.Value != nil {
		product.Value = decimal.NullDecimal{Decimal: *in.Value, Valid: true}
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List productos de la organización, más recientes primero.
func (uc *ProductUseCase) List(orgID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AdjustQuantity aplica delta a la cantidad del producto de forma atómica.
// Un resultado negativo es no-op (adjusted=false), no un error. Si el ajuste
// cruza el umbral de stock mínimo hacia abajo, emite una notificación
// low_stock. El store aplica el delta condicionado, así que un fallo del
// backend deja la cantidad exactamente como estaba.
func (uc *ProductUseCase) AdjustQuantity(orgID, id string, delta int) (out *dto.ProductResponse, adjusted bool, err error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if product == nil || product.OrganizationID != orgID {
		return nil, false, domain.ErrNotFound
	}
	prev := product.Quantity
	quantity, ok, err := uc.repo.AdjustQuantity(id, delta)
	if err != nil {
		return nil, false, err
	}
	product.Quantity = quantity
	if !ok {
		return toProductResponse(product), false, nil
	}
	if prev > product.MinQuantity && quantity <= product.MinQuantity {
		uc.notify(orgID, entity.NotificationLowStock, product.ID,
			fmt.Sprintf("Estoque baixo: %s (%d/%d)", product.Name, quantity, product.MinQuantity))
	}
	return toProductResponse(product), true, nil
}

// Delete elimina un producto de la organización.
func (uc *ProductUseCase) Delete(orgID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// notify crea la notificación sin propagar fallos: un aviso perdido no debe
// abortar la operación de inventario que lo originó.
func (uc *ProductUseCase) notify(orgID, typ, productID, message string) {
	_ = uc.notifications.Create(&entity.Notification{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Type:           typ,
		Message:        message,
		ProductID:      productID,
		CreatedAt:      time.Now(),
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		ModelID:        p.ModelID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Quantity:       p.Quantity,
		MinQuantity:    p.MinQuantity,
		ExpiryDate:     p.ExpiryDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Value.Valid {
		v := p.Value.Decimal
		out.Value = &v
	}
	return out
}
