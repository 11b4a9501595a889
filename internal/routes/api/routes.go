package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games", ListFinishedGames)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/move", PlayMove)
}
