package listing

// Cursor menyimpan state satu layar daftar: nilai filter, ukuran halaman,
// dan halaman yang dipilih. Mengubah filter atau ukuran halaman selalu
// kembali ke halaman 1.
type Cursor struct {
	filters  map[string]string
	pageSize int
	page     int
}

func NewCursor(pageSize int) *Cursor {
	return &Cursor{
		filters:  make(map[string]string),
		pageSize: NormalizePageSize(pageSize),
		page:     1,
	}
}

func (c *Cursor) SetFilter(name, value string) {
	if c.filters[name] == value {
		return
	}
	if value == "" {
		delete(c.filters, name)
	} else {
		c.filters[name] = value
	}
	c.page = 1
}

func (c *Cursor) Filter(name string) string { return c.filters[name] }

func (c *Cursor) SetPageSize(size int) {
	size = NormalizePageSize(size)
	if size == c.pageSize {
		return
	}
	c.pageSize = size
	c.page = 1
}

func (c *Cursor) GoTo(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

func (c *Cursor) CurrentPage() int { return c.page }
func (c *Cursor) PageSize() int    { return c.pageSize }

// Select menerapkan predicate ke items dan menyimpan halaman hasil clamp,
// jadi kalau hasil menyusut halaman yang dipilih ikut turun.
func Select[T any](c *Cursor, items []T, preds ...Predicate[T]) Page[T] {
	res := Apply(items, c.pageSize, c.page, preds...)
	c.page = res.CurrentPage
	return res
}
