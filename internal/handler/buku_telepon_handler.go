package handler

import (
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/sanitize"

	"github.com/gofiber/fiber/v2"
)

type BukuTeleponHandler struct {
	masterHandler[model.BukuTelepon, uint]
	repo repository.BukuTeleponRepository
}

func NewBukuTeleponHandler(repo repository.BukuTeleponRepository) *BukuTeleponHandler {
	return &BukuTeleponHandler{
		repo: repo,
		masterHandler: masterHandler[model.BukuTelepon, uint]{
			repo:    repo,
			label:   "Log telepon",
			filters: []string{"arah", "status"},
			parseID: uintParam,
			setID:   func(r *model.BukuTelepon, id uint) { r.IDBukuTlp = id },
			preds: func(cur *listing.Cursor) []listing.Predicate[model.BukuTelepon] {
				return []listing.Predicate[model.BukuTelepon]{
					listing.Search(cur.Filter(querySearch),
						func(r model.BukuTelepon) string { return r.NamaPenelpon },
						func(r model.BukuTelepon) string { return r.NoPenelpon },
						func(r model.BukuTelepon) string { return r.NamaPenerima },
						func(r model.BukuTelepon) string { return r.Pesan },
					),
					listing.Equals(cur.Filter("arah"), func(r model.BukuTelepon) string { return r.Arah }),
					listing.Equals(cur.Filter("status"), func(r model.BukuTelepon) string { return r.Status }),
					listing.DateRange(cur.Filter(queryFrom), cur.Filter(queryTo), func(r model.BukuTelepon) string { return r.Tanggal }),
				}
			},
			prepare: func(c *fiber.Ctx, r *model.BukuTelepon) error {
				r.Pesan = sanitize.Text(r.Pesan)
				r.Ket = sanitize.Text(r.Ket)
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

// UpdateStatus menandai log telepon Open/Closed.
func (h *BukuTeleponHandler) UpdateStatus(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "Status log telepon berhasil diupdate"})
}

func parseOpenClosed(c *fiber.Ctx) (string, error) {
	var input struct {
		Status string `json:"status" validate:"required,oneof=Open Closed"`
	}
	if err := parseBody(c, &input); err != nil {
		return "", err
	}
	return input.Status, nil
}
