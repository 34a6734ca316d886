package routes

import (
	"buku-tamu-backend/internal/handler"
	"buku-tamu-backend/internal/middleware"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type crudHandler interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func registerCRUD(r fiber.Router, hdl crudHandler, deleteGuards ...fiber.Handler) {
	r.Get("/", hdl.GetAll)
	r.Get("/:id", hdl.GetByID)
	r.Post("/", hdl.Create)
	r.Put("/:id", hdl.Update)
	r.Delete("/:id", append(deleteGuards, hdl.Delete)...)
}

func SetupBukuTeleponRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewBukuTeleponHandler(repository.NewBukuTeleponRepository(d.DB))

	api := app.Group("/api/logs/telepon", d.protected()...)
	registerCRUD(api, hdl)
	api.Patch("/:id/status", hdl.UpdateStatus)
}

func SetupNotesRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewNotesHandler(repository.NewNotesRepository(d.DB))

	api := app.Group("/api/notes", d.protected()...)
	registerCRUD(api, hdl)
	api.Patch("/:id/status", hdl.UpdateStatus)
}

func SetupPhonebookRoutes(app *fiber.App, d *Deps) {
	guests := app.Group("/api/phonebook/guests", d.protected()...)
	registerCRUD(guests, handler.NewPhonebookTamuHandler(repository.NewPhonebookTamuRepository(d.DB)))

	internal := app.Group("/api/phonebook/internal", d.protected()...)
	registerCRUD(internal, handler.NewPhonebookInternalHandler(repository.NewPhonebookInternalRepository(d.DB)))
}

func SetupJabatanRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewJabatanHandler(repository.NewJabatanRepository(d.DB), d.Photos)

	api := app.Group("/api/jabatan", d.protected()...)
	// Hapus pejabat khusus Admin
	registerCRUD(api, hdl, middleware.Role(model.RoleAdmin))
}
