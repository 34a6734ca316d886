package routes

import (
	"log/slog"

	"buku-tamu-backend/config"
	"buku-tamu-backend/internal/middleware"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps adalah dependensi bersama yang dipakai semua Setup*Routes.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
	Photos *storage.PhotoStore
}

// protected: Auth JWT lalu pencatatan aktivitas.
func (d *Deps) protected() []fiber.Handler {
	return []fiber.Handler{
		middleware.Auth(d.Config.JWTSecret),
		middleware.Aktivitas(repository.NewAktivitasRepository(d.DB), d.Log),
	}
}

// Setup mendaftarkan semua route aplikasi.
func Setup(app *fiber.App, d *Deps) {
	SetupHealthRoutes(app, d)
	SetupAuthRoutes(app, d)
	SetupTamuRoutes(app, d)
	SetupBukuTeleponRoutes(app, d)
	SetupNotesRoutes(app, d)
	SetupPhonebookRoutes(app, d)
	SetupJabatanRoutes(app, d)
	SetupAktivitasRoutes(app, d)
	SetupDashboardRoutes(app, d)
	SetupUploadRoutes(app, d)
}
