package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/laqus/deskguard-api/internal/application/analytics"
	"github.com/laqus/deskguard-api/internal/application/auth"
	"github.com/laqus/deskguard-api/internal/application/reports"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain/repository"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
	infrapdf "github.com/laqus/deskguard-api/internal/infrastructure/pdf"
	"github.com/laqus/deskguard-api/internal/infrastructure/postgres"
	httpRouter "github.com/laqus/deskguard-api/internal/interfaces/http"
	"github.com/laqus/deskguard-api/pkg/config"
	"github.com/laqus/deskguard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// El Entity Store se elige una sola vez al arranque: PostgreSQL para
	// operación real, memoria con fixtures para demo y desarrollo sin DB.
	var (
		userRepo         repository.UserRepository
		orgRepo          repository.OrganizationRepository
		membershipRepo   repository.MembershipRepository
		categoryRepo     repository.CategoryRepository
		modelRepo        repository.ModelRepository
		productRepo      repository.ProductRepository
		notificationRepo repository.NotificationRepository
		txRunner         usecase.MembershipTxRunner
	)

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memstore.New()
		if err := memstore.LoadFixtures(store); err != nil {
			log.Fatal().Err(err).Msg("cargar fixtures de demo")
		}
		userRepo = store.Users()
		orgRepo = store.Organizations()
		membershipRepo = store.Memberships()
		categoryRepo = store.Categories()
		modelRepo = store.Models()
		productRepo = store.Products()
		notificationRepo = store.Notifications()
		txRunner = memstore.NewTxRunner(store)
		log.Info().Msg("store en memoria con datos de demo")

	default:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		orgRepo = postgres.NewOrganizationRepository(pool)
		membershipRepo = postgres.NewMembershipRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		modelRepo = postgres.NewModelRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		notificationRepo = postgres.NewNotificationRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	scopeResolver := scope.NewResolver(membershipRepo)

	userUC := usecase.NewUserUseCase(userRepo, membershipRepo, orgRepo, txRunner)
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	modelUC := usecase.NewModelUseCase(modelRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, modelRepo, notificationRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, modelRepo, categoryRepo, notificationRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewInventoryReportUseCase(orgRepo, dashboardUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, scopeResolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Deskguard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		OrganizationUC: orgUC,
		CategoryUC:     categoryUC,
		ModelUC:        modelUC,
		ProductUC:      productUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		ScopeResolver:  scopeResolver,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
