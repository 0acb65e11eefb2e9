package memstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/laqus/deskguard-api/internal/domain/entity"
)

// Password de los usuarios de demostración (modo memory solamente).
const DemoPassword = "123456"

// LoadFixtures puebla el store con el set de demostración: dos usuarios
// (admin@laqus.com y user@laqus.com), dos organizaciones y un inventario
// pequeño en la primera. Devuelve error solo si bcrypt falla.
func LoadFixtures(s *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de password demo: %w", err)
	}
	now := time.Now()

	admin := &entity.User{
		ID: uuid.New().String(), Name: "Admin Sistema", Email: "admin@laqus.com",
		PasswordHash: string(hash), Role: entity.RoleAdmin,
		CreatedAt: now, UpdatedAt: now,
	}
	common := &entity.User{
		ID: uuid.New().String(), Name: "Usuário Comum", Email: "user@laqus.com",
		PasswordHash: string(hash), Role: entity.RoleCommon,
		CreatedAt: now.Add(time.Second), UpdatedAt: now.Add(time.Second),
	}
	_ = s.Users().Create(admin)
	_ = s.Users().Create(common)

	matriz := &entity.Organization{
		ID: uuid.New().String(), Name: "Laqus Matriz",
		Description: "Sede principal", CreatedAt: now, UpdatedAt: now,
	}
	filial := &entity.Organization{
		ID: uuid.New().String(), Name: "Laqus Filial SP",
		CreatedAt: now, UpdatedAt: now,
	}
	_ = s.Organizations().Create(matriz)
	_ = s.Organizations().Create(filial)

	memberships := []*entity.Membership{
		{ID: uuid.New().String(), UserID: admin.ID, OrganizationID: matriz.ID, Role: entity.MembershipRoleAdmin, CreatedAt: now},
		{ID: uuid.New().String(), UserID: admin.ID, OrganizationID: filial.ID, Role: entity.MembershipRoleAdmin, CreatedAt: now.Add(time.Second)},
		{ID: uuid.New().String(), UserID: common.ID, OrganizationID: matriz.ID, Role: entity.MembershipRoleViewer, CreatedAt: now},
	}
	for _, m := range memberships {
		_ = s.Memberships().Create(m)
	}

	cat := &entity.Category{
		ID: uuid.New().String(), OrganizationID: matriz.ID,
		Name: "Notebooks", Description: "Equipos portátiles",
		CreatedAt: now, UpdatedAt: now,
	}
	_ = s.Categories().Create(cat)

	model := &entity.Model{
		ID: uuid.New().String(), OrganizationID: matriz.ID, CategoryID: cat.ID,
		Name: "ThinkPad T14", Brand: "Lenovo",
		CreatedAt: now, UpdatedAt: now,
	}
	_ = s.Models().Create(model)

	value := decimal.NewFromInt(4500)
	expiry := now.Add(20 * 24 * time.Hour)
	products := []*entity.Product{
		{
			ID: uuid.New().String(), OrganizationID: matriz.ID,
			ModelID: model.ID, CategoryID: cat.ID,
			Name: "Notebook Dev", Quantity: 5, MinQuantity: 2,
			Value:     decimal.NullDecimal{Decimal: value, Valid: true},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), OrganizationID: matriz.ID,
			ModelID: model.ID, CategoryID: cat.ID,
			Name: "Licencia Antivirus", Quantity: 1, MinQuantity: 3,
			ExpiryDate: &expiry,
			CreatedAt:  now.Add(time.Second), UpdatedAt: now.Add(time.Second),
		},
	}
	for _, p := range products {
		_ = s.Products().Create(p)
	}
	return nil
}
