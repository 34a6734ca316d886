package handler

import (
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/sanitize"

	"github.com/gofiber/fiber/v2"
)

type NotesHandler struct {
	masterHandler[model.Notes, uint]
	repo repository.NotesRepository
}

func NewNotesHandler(repo repository.NotesRepository) *NotesHandler {
	return &NotesHandler{
		repo: repo,
		masterHandler: masterHandler[model.Notes, uint]{
			repo:    repo,
			label:   "Catatan",
			filters: []string{"status"},
			parseID: uintParam,
			setID:   func(r *model.Notes, id uint) { r.IDNotes = id },
			preds: func(cur *listing.Cursor) []listing.Predicate[model.Notes] {
				return []listing.Predicate[model.Notes]{
					listing.Search(cur.Filter(querySearch),
						func(r model.Notes) string { return r.Pengirim },
						func(r model.Notes) string { return r.Penerima },
						func(r model.Notes) string { return r.Pesan },
					),
					listing.Equals(cur.Filter("status"), func(r model.Notes) string { return r.Status }),
					listing.DateRange(cur.Filter(queryFrom), cur.Filter(queryTo), func(r model.Notes) string { return r.Tanggal }),
				}
			},
			prepare: func(c *fiber.Ctx, r *model.Notes) error {
				r.Pesan = sanitize.Text(r.Pesan)
				if r.Status == "" {
					r.Status = model.StatusOpen
				}
				if r.GroInput == "" {
					r.GroInput = currentUsername(c)
				}
				return nil
			},
		},
	}
}

func (h *NotesHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}
	status, err := parseOpenClosed(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.repo.UpdateStatus(c.UserContext(), id, status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status catatan berhasil diupdate"})
}
