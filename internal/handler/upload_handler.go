package handler

import (
	"buku-tamu-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Folder yang boleh dipakai client saat upload
var uploadFolders = map[string]bool{"tamu": true, "kartu": true, "pejabat": true}

type UploadHandler struct {
	photos *storage.PhotoStore
}

func NewUploadHandler(photos *storage.PhotoStore) *UploadHandler {
	return &UploadHandler{photos: photos}
}

// UploadFoto menerima multipart field "foto" dan mengembalikan URL hasil simpan.
func (h *UploadHandler) UploadFoto(c *fiber.Ctx) error {
	file, err := c.FormFile("foto")
	if err != nil {
		return badRequest(c, "File foto wajib diupload")
	}
	folder := c.FormValue("folder", "tamu")
	if !uploadFolders[folder] {
		return badRequest(c, "Folder tidak dikenal")
	}

	url, err := h.photos.SaveUpload(c.UserContext(), folder, file)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Foto berhasil diupload", "url": url})
}
