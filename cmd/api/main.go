package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/spreadsheet"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	interestRepo := postgres.NewInterestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := auth.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	subCategoryUC := usecase.NewSubCategoryUseCase(subCategoryRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, subCategoryRepo)
	leadUC := crm.NewLeadUseCase(leadRepo, interestRepo, txRunner, cfg.CRM.WarrantyYears)
	customerUC := crm.NewCustomerUseCase(customerRepo, interestRepo, txRunner, cfg.CRM.WarrantyYears)
	importUC := importer.NewImportUseCase(txRunner, spreadsheet.NewXLSXReader(), cfg.CRM.WarrantyYears)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CategoryUC:    categoryUC,
		SubCategoryUC: subCategoryUC,
		ProductUC:     productUC,
		LeadUC:        leadUC,
		CustomerUC:    customerUC,
		ImportUC:      importUC,
		JWTSecret:     cfg.JWT.Secret,
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
