package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MatrixETF/solana-airdrop/internal/delivery"
	"github.com/MatrixETF/solana-airdrop/internal/metrics"
)

// InitHandlers registers the API before the static front end so that GET /
// stays the API banner.
func InitHandlers(app *fiber.App, h *delivery.Handler, staticDir string) {
	app.Use(cors.New())
	app.Use(metrics.HTTPMiddleware())
	app.Use(recover.New())

	app.Get("/", h.Index)
	app.Post("/", h.Airdrop)
	app.Get("/coins", h.Coins)
	app.Get("/metrics", metrics.Handler())

	if staticDir != "" {
		app.Static("/", staticDir)
	}
}
