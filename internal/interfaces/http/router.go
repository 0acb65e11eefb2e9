package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laqus/deskguard-api/internal/application/analytics"
	"github.com/laqus/deskguard-api/internal/application/auth"
	"github.com/laqus/deskguard-api/internal/application/reports"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	OrganizationUC *usecase.OrganizationUseCase
	CategoryUC     *usecase.CategoryUseCase
	ModelUC        *usecase.ModelUseCase
	ProductUC      *usecase.ProductUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReportUC       *reports.InventoryReportUseCase
	ScopeResolver  *scope.Resolver
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/me", authHandler.Me)

	// Scope: consultar/cambiar la organización activa (protegido, sin alcance previo)
	scopeHandler := NewScopeHandler(deps.ScopeResolver, deps.UserUC)
	protected.Get("/scope", scopeHandler.Get)
	protected.Put("/scope", scopeHandler.Switch)
	protected.Get("/scope/memberships", scopeHandler.Memberships)

	// Administración global (protegido + rol global admin)
	admin := protected.Group("/", RequireAdmin())

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Get("/:id/organizations", userHandler.ListMemberships)
	users.Put("/:id/organizations", userHandler.SetMemberships)

	orgs := admin.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/", orgHandler.List)
	orgs.Get("/:id", orgHandler.GetByID)
	orgs.Put("/:id", orgHandler.Update)
	orgs.Delete("/:id", orgHandler.Delete)

	// Inventario (protegido + organización activa; escrituras exigen rol mutador)
	scoped := protected.Group("/", RequireScope(deps.ScopeResolver))
	mutate := RequireMutate(deps.ScopeResolver)

	categories := scoped.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", mutate, categoryHandler.Create)
	categories.Put("/:id", mutate, categoryHandler.Update)
	categories.Delete("/:id", mutate, categoryHandler.Delete)

	models := scoped.Group("/models")
	modelHandler := NewModelHandler(deps.ModelUC)
	models.Get("/", modelHandler.List)
	models.Get("/:id", modelHandler.GetByID)
	models.Post("/", mutate, modelHandler.Create)
	models.Put("/:id", mutate, modelHandler.Update)
	models.Delete("/:id", mutate, modelHandler.Delete)

	products := scoped.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", mutate, productHandler.Create)
	products.Put("/:id", mutate, productHandler.Update)
	products.Post("/:id/quantity", mutate, productHandler.AdjustQuantity)
	products.Delete("/:id", mutate, productHandler.Delete)

	notifications := scoped.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.ListUnread)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	dashboard := scoped.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/products", dashboardHandler.Products)

	reportsGroup := scoped.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
}
