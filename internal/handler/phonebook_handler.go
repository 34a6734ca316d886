package handler

import (
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/sanitize"
	"buku-tamu-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PhonebookTamuHandler struct {
	masterHandler[model.PhonebookTamu, string]
	repo repository.PhonebookTamuRepository
}

func NewPhonebookTamuHandler(repo repository.PhonebookTamuRepository) *PhonebookTamuHandler {
	return &PhonebookTamuHandler{
		repo: repo,
		masterHandler: masterHandler[model.PhonebookTamu, string]{
			repo:    repo,
			label:   "Kontak tamu",
			filters: []string{"instansi"},
			parseID: stringParam,
			setID:   func(r *model.PhonebookTamu, id string) { r.NoTelp = id },
			preds: func(cur *listing.Cursor) []listing.Predicate[model.PhonebookTamu] {
				return []listing.Predicate[model.PhonebookTamu]{
					listing.Search(cur.Filter(querySearch),
						func(r model.PhonebookTamu) string { return r.Nama },
						func(r model.PhonebookTamu) string { return r.NoTelp },
						func(r model.PhonebookTamu) string { return r.NoTelp2 },
						func(r model.PhonebookTamu) string { return r.Instansi },
						func(r model.PhonebookTamu) string { return r.Jabatan },
					),
					listing.Equals(cur.Filter("instansi"), func(r model.PhonebookTamu) string { return r.Instansi }),
				}
			},
			prepare: func(c *fiber.Ctx, r *model.PhonebookTamu) error {
				r.Alamat = sanitize.Text(r.Alamat)
				return nil
			},
		},
	}
}

// Update kontak tamu. Nomor telepon adalah primary key, jadi kalau body
// membawa nomor baru kontak lama dihapus dan dibuat ulang dengan nomor itu.
func (h *PhonebookTamuHandler) Update(c *fiber.Ctx) error {
	oldNoTelp := c.Params("id")
	if _, err := h.repo.GetByID(c.UserContext(), oldNoTelp); err != nil {
		return errorJSON(c, err)
	}

	var kontak model.PhonebookTamu
	if err := c.BodyParser(&kontak); err != nil {
		return badRequest(c, "Data tidak valid")
	}
	if kontak.NoTelp == "" {
		kontak.NoTelp = oldNoTelp
	}
	if err := validation.Struct(&kontak); err != nil {
		return errorJSON(c, err)
	}
	kontak.Alamat = sanitize.Text(kontak.Alamat)

	var err error
	if kontak.NoTelp == oldNoTelp {
		err = h.repo.Update(c.UserContext(), &kontak)
	} else {
		if _, dupErr := h.repo.GetByID(c.UserContext(), kontak.NoTelp); dupErr == nil {
			return badRequest(c, "Nomor telepon sudah terdaftar")
		}
		err = h.repo.Rekey(c.UserContext(), oldNoTelp, &kontak)
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kontak tamu berhasil diupdate", "data": kontak})
}

type PhonebookInternalHandler struct {
	masterHandler[model.PhonebookInternal, uint]
}

func NewPhonebookInternalHandler(repo repository.PhonebookInternalRepository) *PhonebookInternalHandler {
	return &PhonebookInternalHandler{masterHandler[model.PhonebookInternal, uint]{
		repo:    repo,
		label:   "Kontak internal",
		filters: []string{"divisi", "lokasi"},
		parseID: uintParam,
		setID:   func(r *model.PhonebookInternal, id uint) { r.IDTlp = id },
		preds: func(cur *listing.Cursor) []listing.Predicate[model.PhonebookInternal] {
			return []listing.Predicate[model.PhonebookInternal]{
				listing.Search(cur.Filter(querySearch),
					func(r model.PhonebookInternal) string { return r.Nama },
					func(r model.PhonebookInternal) string { return r.Ext },
					func(r model.PhonebookInternal) string { return r.NoHP },
					func(r model.PhonebookInternal) string { return r.Jabatan },
				),
				listing.Equals(cur.Filter("divisi"), func(r model.PhonebookInternal) string { return r.Divisi }),
				listing.Equals(cur.Filter("lokasi"), func(r model.PhonebookInternal) string { return r.Lokasi }),
			}
		},
	}}
}
