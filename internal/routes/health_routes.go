package routes

import (
	"buku-tamu-backend/internal/handler"
	"buku-tamu-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewHealthHandler(repository.NewHealthRepository(d.DB), d.Config.AppName, d.Config.DBName)
	app.Get("/health", hdl.Check)
}
