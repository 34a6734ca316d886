package routes

import (
	"buku-tamu-backend/internal/handler"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d *Deps) {
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(d.DB), d.Config.JWTSecret, d.Log)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/api/auth/login", hdl.Login)

	api := app.Group("/api/auth", d.protected()...)
	api.Put("/update-password", hdl.UpdatePassword)
}
