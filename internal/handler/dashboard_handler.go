package handler

import (
	"time"

	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	usecase *usecase.DashboardUsecase
	now     func() time.Time
}

func NewDashboardHandler(u *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: u, now: time.Now}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.usecase.Stats(c.UserContext(), h.now())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}

func (h *DashboardHandler) GetTrends(c *fiber.Ctx) error {
	trends, err := h.usecase.Trends(c.UserContext(), h.now(), c.QueryInt("days", 7))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil tren kunjungan",
		"data":    trends,
	})
}
