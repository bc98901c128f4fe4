package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-allocation-api/internal/application/inventory"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConsolidationUC *inventory.ConsolidationUseCase
	LocationUC      *usecase.LocationUseCase
	JWTSecret       string
	MaxOrderLines   int
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.ConsolidationUC, deps.MaxOrderLines)
	stockGroup.Get("/consolidated", stockHandler.GetConsolidated)
	stockGroup.Post("/validate-order", stockHandler.ValidateOrder)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
}
