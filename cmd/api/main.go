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
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/Planta-api/internal/application/inventory"
	apprecipe "github.com/jhoicas/Planta-api/internal/application/recipe"
	"github.com/jhoicas/Planta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Planta-api/internal/interfaces/http"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
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

	ledgerRepo := postgres.NewLedgerEntryRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordShipmentUC := appinventory.NewRecordShipmentUseCase(txRunner, recipeRepo)
	shipmentQueryUC := appinventory.NewShipmentQueryUseCase(shipmentRepo, ledgerRepo)
	recordMovementUC := appinventory.NewRecordMovementUseCase(ledgerRepo)
	stockQueryUC := appinventory.NewStockQueryUseCase(ledgerRepo)
	ledgerAdminUC := appinventory.NewLedgerAdminUseCase(txRunner, ledgerRepo, log)
	recipeUC := apprecipe.NewRecipeUseCase(recipeRepo)

	alertThreshold, err := decimal.NewFromString(cfg.Stock.AlertThreshold)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Stock.AlertThreshold).Msg("STOCK_ALERT_THRESHOLD inválido")
	}

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
		Title:    "Planta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordShipment: recordShipmentUC,
		ShipmentQuery:  shipmentQueryUC,
		RecordMovement: recordMovementUC,
		StockQuery:     stockQueryUC,
		LedgerAdmin:    ledgerAdminUC,
		RecipeUC:       recipeUC,
		AlertThreshold: alertThreshold,
		AlertLimit:     cfg.Stock.AlertLimit,
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
