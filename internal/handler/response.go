package handler

import (
	"strconv"
	"strings"

	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Query parameter yang dibaca semua endpoint daftar
const (
	queryPage     = "page"
	queryPageSize = "pageSize"
	querySearch   = "search"
	queryFrom     = "from"
	queryTo       = "to"
)

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": apperror.Message(err)})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// parseBody membaca JSON body lalu menjalankan validator.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation("Data tidak valid")
	}
	return validation.Struct(out)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, badID
	}
	return uint(id), nil
}

// cursorFromQuery menyusun Cursor dari query string. filters adalah nama
// filter tambahan milik entitas (mis. "kategori", "status").
func cursorFromQuery(c *fiber.Ctx, filters ...string) *listing.Cursor {
	cur := listing.NewCursor(c.QueryInt(queryPageSize, listing.DefaultPageSize))
	for _, name := range append([]string{querySearch, queryFrom, queryTo}, filters...) {
		cur.SetFilter(name, strings.TrimSpace(c.Query(name)))
	}
	cur.GoTo(c.QueryInt(queryPage, 1))
	return cur
}

func pageJSON[T any](c *fiber.Ctx, p listing.Page[T]) error {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return c.JSON(fiber.Map{
		"data": items,
		"pagination": fiber.Map{
			"page":       p.CurrentPage,
			"pageSize":   p.PageSize,
			"total":      p.TotalMatching,
			"totalPages": p.TotalPages,
		},
	})
}

func currentUsername(c *fiber.Ctx) string {
	u, _ := c.Locals("username").(string)
	return u
}

var badID = apperror.Validation("ID tidak valid")
