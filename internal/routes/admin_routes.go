package routes

import (
	"buku-tamu-backend/internal/handler"
	"buku-tamu-backend/internal/middleware"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAktivitasRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewAktivitasHandler(repository.NewAktivitasRepository(d.DB))

	api := app.Group("/api/aktivitas-pengguna", append(d.protected(), middleware.Role(model.RoleAdmin))...)
	api.Get("/", hdl.GetAll)
}

func SetupDashboardRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewDashboardHandler(usecase.NewDashboardUsecase(repository.NewDashboardRepository(d.DB)))

	api := app.Group("/api/dashboard", d.protected()...)
	api.Get("/stats", hdl.GetStats)
	api.Get("/trends", hdl.GetTrends)
}

func SetupUploadRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewUploadHandler(d.Photos)

	api := app.Group("/api/uploads", d.protected()...)
	api.Post("/foto", hdl.UploadFoto)
}
