package middleware

import (
	"context"
	"log/slog"
	"time"

	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Aktivitas mencatat setiap request yang mengubah data (selain GET/HEAD/OPTIONS)
// ke tabel aktivitas_pengguna setelah handler selesai. Gagal mencatat tidak
// membatalkan response.
func Aktivitas(repo repository.AktivitasRepository, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		err := c.Next()

		username, _ := c.Locals("username").(string)
		role, _ := c.Locals("role").(string)
		entry := &model.AktivitasPengguna{
			Username:   username,
			Role:       role,
			Aksi:       c.Method() + " " + c.Path(),
			StatusCode: c.Response().StatusCode(),
			IP:         c.IP(),
			UserAgent:  string(c.Request().Header.UserAgent()),
			Waktu:      time.Now(),
		}
		if logErr := repo.Create(context.WithoutCancel(c.UserContext()), entry); logErr != nil {
			log.Warn("gagal mencatat aktivitas", "aksi", entry.Aksi, "error", logErr)
		}
		return err
	}
}
