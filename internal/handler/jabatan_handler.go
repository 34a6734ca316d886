package handler

import (
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type JabatanHandler struct {
	masterHandler[model.Jabatan, uint]
}

// NewJabatanHandler: foto pejabat boleh dikirim sebagai data URI, disimpan lewat photos.
func NewJabatanHandler(repo repository.JabatanRepository, photos usecase.PhotoSaver) *JabatanHandler {
	return &JabatanHandler{masterHandler[model.Jabatan, uint]{
		repo:    repo,
		label:   "Pejabat",
		filters: []string{"gedung", "divisi", "level"},
		parseID: uintParam,
		setID:   func(r *model.Jabatan, id uint) { r.IDJabatan = id },
		preds: func(cur *listing.Cursor) []listing.Predicate[model.Jabatan] {
			return []listing.Predicate[model.Jabatan]{
				listing.Search(cur.Filter(querySearch),
					func(r model.Jabatan) string { return r.Nama },
					func(r model.Jabatan) string { return r.Divisi },
					func(r model.Jabatan) string { return r.Bidang },
					func(r model.Jabatan) string { return r.Ruang },
				),
				listing.Equals(cur.Filter("gedung"), func(r model.Jabatan) string { return r.Gedung }),
				listing.Equals(cur.Filter("divisi"), func(r model.Jabatan) string { return r.Divisi }),
				listing.Equals(cur.Filter("level"), func(r model.Jabatan) string { return r.Level }),
			}
		},
		prepare: func(c *fiber.Ctx, r *model.Jabatan) error {
			if photos == nil || r.Foto == "" {
				return nil
			}
			url, err := photos.SaveDataURI(c.UserContext(), "pejabat", r.Foto)
			if err != nil {
				return err
			}
			r.Foto = url
			return nil
		},
	}}
}
