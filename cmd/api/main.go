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

	"github.com/jbglogistica/logistica-api/internal/application/auth"
	"github.com/jbglogistica/logistica-api/internal/application/reports"
	"github.com/jbglogistica/logistica-api/internal/application/shipping"
	"github.com/jbglogistica/logistica-api/internal/application/usecase"
	infrapdf "github.com/jbglogistica/logistica-api/internal/infrastructure/pdf"
	"github.com/jbglogistica/logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jbglogistica/logistica-api/internal/interfaces/http"
	"github.com/jbglogistica/logistica-api/pkg/config"
	"github.com/jbglogistica/logistica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
		Level:   cfg.App.LogLevel,
	})
	log.Info().Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	boxRepo := postgres.NewBoxRepository(pool)
	stockRepo := postgres.NewBoxStockRepository(pool)
	tariffRepo := postgres.NewTariffRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	finderRepo := postgres.NewFinderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Primer arranque: roles base + administrador inicial
	if err := postgres.EnsureAdmin(userRepo, roleRepo, "admin@jbg.com", "123456"); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	catalogUC := usecase.NewCatalogUseCase(storeRepo, zoneRepo, tariffRepo)
	boxUC := usecase.NewBoxUseCase(boxRepo, stockRepo, storeRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo)
	orderUC := shipping.NewCreateOrderUseCase(txRunner, customerRepo, storeRepo, boxRepo, orderRepo)
	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	shipmentUC := shipping.NewShipmentUseCase(
		txRunner, orderRepo, shipmentRepo, tariffRepo,
		driverRepo, customerRepo, zoneRepo, labelGenerator,
	)
	reportUC := reports.NewReportUseCase(reportRepo)

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
		Title:    "JBG Logística API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CustomerUC: customerUC,
		CatalogUC:  catalogUC,
		BoxUC:      boxUC,
		DriverUC:   driverUC,
		OrderUC:    orderUC,
		ShipmentUC: shipmentUC,
		ReportUC:   reportUC,
		Finder:     finderRepo,
		JWTSecret:  cfg.JWT.Secret,
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
