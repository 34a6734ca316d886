package handler

import (
	"strings"

	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AktivitasHandler struct {
	repo repository.AktivitasRepository
}

func NewAktivitasHandler(repo repository.AktivitasRepository) *AktivitasHandler {
	return &AktivitasHandler{repo: repo}
}

// GetAll: paginasi dilakukan di database, bukan di memori.
func (h *AktivitasHandler) GetAll(c *fiber.Ctx) error {
	pageSize := listing.NormalizePageSize(c.QueryInt(queryPageSize, listing.DefaultPageSize))
	page := c.QueryInt(queryPage, 1)
	if page < 1 {
		page = 1
	}

	rows, total, err := h.repo.Paginate(c.UserContext(), page, pageSize, strings.TrimSpace(c.Query(querySearch)))
	if err != nil {
		return errorJSON(c, err)
	}
	if rows == nil {
		rows = []model.AktivitasPengguna{}
	}
	return c.JSON(fiber.Map{
		"data": rows,
		"pagination": fiber.Map{
			"page":       page,
			"pageSize":   pageSize,
			"total":      total,
			"totalPages": listing.TotalPages(int(total), pageSize),
		},
	})
}
