// seed carga el set de demostración en PostgreSQL: dos usuarios
// (admin@laqus.com / user@laqus.com, password "123456"), dos organizaciones
// y un inventario pequeño en la primera.
//
// Uso: go run ./cmd/seed
// La conexión se toma de la misma configuración que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/postgres"
	"github.com/laqus/deskguard-api/pkg/config"
)

const demoPassword = "123456"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password demo: %v", err)
	}
	now := time.Now()

	users := postgres.NewUserRepository(pool)
	orgs := postgres.NewOrganizationRepository(pool)
	memberships := postgres.NewMembershipRepository(pool)
	categories := postgres.NewCategoryRepository(pool)
	models := postgres.NewModelRepository(pool)
	products := postgres.NewProductRepository(pool)

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
	for _, u := range []*entity.User{admin, common} {
		if err := users.Create(u); err != nil {
			fail("crear usuario %s: %v", u.Email, err)
		}
	}

	matriz := &entity.Organization{
		ID: uuid.New().String(), Name: "Laqus Matriz",
		Description: "Sede principal", CreatedAt: now, UpdatedAt: now,
	}
	filial := &entity.Organization{
		ID: uuid.New().String(), Name: "Laqus Filial SP",
		CreatedAt: now, UpdatedAt: now,
	}
	for _, o := range []*entity.Organization{matriz, filial} {
		if err := orgs.Create(o); err != nil {
			fail("crear organización %s: %v", o.Name, err)
		}
	}

	for _, m := range []*entity.Membership{
		{ID: uuid.New().String(), UserID: admin.ID, OrganizationID: matriz.ID, Role: entity.MembershipRoleAdmin, CreatedAt: now},
		{ID: uuid.New().String(), UserID: admin.ID, OrganizationID: filial.ID, Role: entity.MembershipRoleAdmin, CreatedAt: now.Add(time.Second)},
		{ID: uuid.New().String(), UserID: common.ID, OrganizationID: matriz.ID, Role: entity.MembershipRoleViewer, CreatedAt: now},
	} {
		if err := memberships.Create(m); err != nil {
			fail("crear membresía: %v", err)
		}
	}

	cat := &entity.Category{
		ID: uuid.New().String(), OrganizationID: matriz.ID,
		Name: "Notebooks", Description: "Equipos portátiles",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := categories.Create(cat); err != nil {
		fail("crear categoría: %v", err)
	}

	model := &entity.Model{
		ID: uuid.New().String(), OrganizationID: matriz.ID, CategoryID: cat.ID,
		Name: "ThinkPad T14", Brand: "Lenovo",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := models.Create(model); err != nil {
		fail("crear modelo: %v", err)
	}

	value := decimal.NewFromInt(4500)
	expiry := now.Add(20 * 24 * time.Hour)
	for _, p := range []*entity.Product{
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
	} {
		if err := products.Create(p); err != nil {
			fail("crear producto %s: %v", p.Name, err)
		}
	}

	fmt.Printf("Datos de demo cargados: 2 usuarios, 2 organizaciones, 1 categoría, 1 modelo, 2 productos\n")
	fmt.Printf("Login: admin@laqus.com / %s\n", demoPassword)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
