package routes

import (
	"errors"
	"strings"

	"buku-tamu-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp menyusun aplikasi Fiber lengkap: middleware global, static uploads, dan semua route.
func NewApp(d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   d.Config.AppName,
		BodyLimit: 10 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			d.Log.Error("request gagal", "method", c.Method(), "path", c.Path(), "error", err)
			return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": apperror.Message(err)})
		},
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(d.Config.CorsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New())

	// Serve foto yang disimpan lokal
	app.Static("/uploads", d.Config.UploadDir)

	Setup(app, d)
	return app
}
