package handler

import (
	"fmt"

	"buku-tamu-backend/internal/mapper"
	"buku-tamu-backend/internal/report"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Filter tambahan untuk buku tamu dan history
var tamuFilters = []string{usecase.FilterKategori, usecase.FilterKeperluan, usecase.FilterStatus}

type TamuHandler struct {
	usecase *usecase.TamuUsecase
}

func NewTamuHandler(u *usecase.TamuUsecase) *TamuHandler {
	return &TamuHandler{usecase: u}
}

func (h *TamuHandler) Create(c *fiber.Ctx) error {
	var p mapper.TamuPayload
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Data tidak valid")
	}
	// Petugas yang login dicatat sebagai penginput kalau client tidak mengirim
	if p.GroInput == nil {
		if u := currentUsername(c); u != "" {
			p.GroInput = &u
		}
	}

	id, err := h.usecase.Create(c.UserContext(), p)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Tamu berhasil dicatat", "idvisit": id})
}

func (h *TamuHandler) GetAll(c *fiber.Ctx) error {
	rows, err := h.usecase.List(c.UserContext(), c.QueryInt("limit", usecase.MaxListTamu))
	if err != nil {
		return errorJSON(c, err)
	}
	// Response berupa array langsung, bukan dibungkus "data"
	if rows == nil {
		rows = []mapper.TamuPayload{}
	}
	return c.JSON(rows)
}

func (h *TamuHandler) GuestBook(c *fiber.Ctx) error {
	page, err := h.usecase.GuestBook(c.UserContext(), cursorFromQuery(c, tamuFilters...))
	if err != nil {
		return errorJSON(c, err)
	}
	return pageJSON(c, page)
}

func (h *TamuHandler) History(c *fiber.Ctx) error {
	page, err := h.usecase.History(c.UserContext(), cursorFromQuery(c, tamuFilters...))
	if err != nil {
		return errorJSON(c, err)
	}
	return pageJSON(c, page)
}

func (h *TamuHandler) GetByID(c *fiber.Ctx) error {
	tamu, err := h.usecase.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"data": tamu})
}

func (h *TamuHandler) Update(c *fiber.Ctx) error {
	var p mapper.TamuPayload
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Data tidak valid")
	}
	if err := h.usecase.Update(c.UserContext(), c.Params("id"), p); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Data tamu berhasil diupdate"})
}

func (h *TamuHandler) UpdateStatus(c *fiber.Ctx) error {
	var input struct {
		StatusTamu string `json:"statustamu"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Data tidak valid")
	}
	if err := h.usecase.SetStatus(c.UserContext(), c.Params("id"), input.StatusTamu); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status tamu berhasil diupdate"})
}

func (h *TamuHandler) Checkout(c *fiber.Ctx) error {
	if err := h.usecase.Checkout(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tamu berhasil checkout"})
}

func (h *TamuHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Data tamu berhasil dihapus"})
}

// Laporan mengunduh rekap kunjungan dalam XLSX untuk rentang from..to (YYYY-MM-DD).
func (h *TamuHandler) Laporan(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return badRequest(c, "Parameter from dan to wajib diisi")
	}

	rows, err := h.usecase.Report(c.UserContext(), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	buf, err := report.TamuWorkbook(rows, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="laporan-tamu-%s-%s.xlsx"`, from, to))
	return c.Send(buf.Bytes())
}
