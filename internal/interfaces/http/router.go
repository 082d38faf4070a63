package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/inventory"
	apprecipe "github.com/jhoicas/Planta-api/internal/application/recipe"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordShipment *inventory.RecordShipmentUseCase
	ShipmentQuery  *inventory.ShipmentQueryUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockQuery     *inventory.StockQueryUseCase
	LedgerAdmin    *inventory.LedgerAdminUseCase
	RecipeUC       *apprecipe.RecipeUseCase

	AlertThreshold decimal.Decimal
	AlertLimit     int
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Despachos (protegido)
	shipmentHandler := NewShipmentHandler(deps.RecordShipment, deps.ShipmentQuery)
	shipments := protected.Group("/shipments")
	shipments.Post("/", shipmentHandler.RecordShipment)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.Get)

	// Libro de movimientos (protegido)
	ledgerHandler := NewLedgerHandler(deps.RecordMovement, deps.LedgerAdmin)
	ledger := protected.Group("/ledger")
	ledger.Post("/", ledgerHandler.RecordMovement)
	ledger.Get("/", ledgerHandler.List)
	ledger.Delete("/:id", ledgerHandler.Delete)

	// Stock y alertas (protegido)
	stockHandler := NewStockHandler(deps.StockQuery, deps.AlertThreshold, deps.AlertLimit)
	stocks := protected.Group("/stock")
	stocks.Get("/", stockHandler.GetStock)
	stocks.Get("/alerts", stockHandler.GetAlerts)

	// Recetas (protegido)
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes := protected.Group("/recipes")
	recipes.Post("/", recipeHandler.Register)
	recipes.Get("/:productCode", recipeHandler.Get)
}
