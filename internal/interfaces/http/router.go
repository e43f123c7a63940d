package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Normalize NormalizeService
	Balances  BalanceService
	Reports   ReportService
	PDF       ledger.ReportPDFGenerator
	XML       ledger.ReportXMLExporter
	JWTSecret string
	Service   string
	Log       *logger.Logger
	// Ping verifica la base de datos para /health; nil = siempre ok.
	Ping func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: "base de datos no disponible"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.Service})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	ledgerGroup := protected.Group("/ledger")
	h := NewLedgerHandler(deps.Normalize, deps.Balances, deps.Reports, deps.PDF, deps.XML)
	ledgerGroup.Post("/normalize", h.Normalize)
	ledgerGroup.Get("/items/:item_id/factor", h.Factor)
	ledgerGroup.Get("/balance", h.Balance)
	ledgerGroup.Get("/balance/details", h.BalanceDetail)
	ledgerGroup.Get("/warehouses/:warehouse_id/report", h.WarehouseReport)
	ledgerGroup.Get("/warehouses/:warehouse_id/low-stock", h.LowStock)
}
