package routes

import (
	"buku-tamu-backend/internal/handler"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupTamuRoutes(app *fiber.App, d *Deps) {
	uc := usecase.NewTamuUsecase(repository.NewTamuRepository(d.DB), d.Photos, d.Log)
	hdl := handler.NewTamuHandler(uc)

	api := app.Group("/tamu", d.protected()...)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	// Route statis harus sebelum /:id
	api.Get("/buku", hdl.GuestBook)
	api.Get("/history", hdl.History)
	api.Get("/laporan", hdl.Laporan)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Patch("/:id/status", hdl.UpdateStatus)
	api.Patch("/:id/checkout", hdl.Checkout)
	api.Delete("/:id", hdl.Delete)
}
