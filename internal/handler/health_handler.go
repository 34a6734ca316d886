package handler

import (
	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	repo    repository.HealthRepository
	appName string
	dbName  string
}

func NewHealthHandler(repo repository.HealthRepository, appName, dbName string) *HealthHandler {
	return &HealthHandler{repo: repo, appName: appName, dbName: dbName}
}

// Check menghitung tabletamu lalu ping database.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	count, err := h.repo.CountTamu(c.UserContext())
	if err == nil {
		err = h.repo.Ping(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "error": apperror.Message(err)})
	}
	return c.JSON(fiber.Map{
		"status":          "ok",
		"name":            h.appName,
		"db":              "connected",
		"dbName":          h.dbName,
		"tabletamu_count": count,
	})
}
