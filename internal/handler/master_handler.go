package handler

import (
	"context"

	"buku-tamu-backend/internal/listing"

	"github.com/gofiber/fiber/v2"
)

// masterRepository adalah operasi CRUD yang dimiliki semua tabel master.
type masterRepository[T any, K comparable] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id K) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id K) error
}

// masterHandler berisi handler CRUD + daftar yang sama untuk log telepon,
// notes, phonebook dan pejabat.
type masterHandler[T any, K comparable] struct {
	repo    masterRepository[T, K]
	label   string
	filters []string
	parseID func(c *fiber.Ctx) (K, error)
	setID   func(row *T, id K)
	preds   func(cur *listing.Cursor) []listing.Predicate[T]
	// prepare dijalankan sebelum Create/Update (sanitasi, isi default)
	prepare func(c *fiber.Ctx, row *T) error
}

func (h *masterHandler[T, K]) GetAll(c *fiber.Ctx) error {
	rows, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	cur := cursorFromQuery(c, h.filters...)
	return pageJSON(c, listing.Select(cur, rows, h.preds(cur)...))
}

func (h *masterHandler[T, K]) GetByID(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	row, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"data": row})
}

func (h *masterHandler[T, K]) Create(c *fiber.Ctx) error {
	var row T
	if err := parseBody(c, &row); err != nil {
		return errorJSON(c, err)
	}
	if h.prepare != nil {
		if err := h.prepare(c, &row); err != nil {
			return errorJSON(c, err)
		}
	}
	if err := h.repo.Create(c.UserContext(), &row); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": h.label + " berhasil dibuat", "data": row})
}

func (h *masterHandler[T, K]) Update(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if _, err := h.repo.GetByID(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	var row T
	if err := parseBody(c, &row); err != nil {
		return errorJSON(c, err)
	}
	h.setID(&row, id)
	if h.prepare != nil {
		if err := h.prepare(c, &row); err != nil {
			return errorJSON(c, err)
		}
	}
	if err := h.repo.Update(c.UserContext(), &row); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": h.label + " berhasil diupdate", "data": row})
}

func (h *masterHandler[T, K]) Delete(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": h.label + " berhasil dihapus"})
}

func uintParam(c *fiber.Ctx) (uint, error) { return paramUint(c, "id") }

func stringParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" {
		return "", badID
	}
	return id, nil
}
