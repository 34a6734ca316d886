// Package listing menyediakan pola filter + paginasi yang dipakai semua layar daftar
// (buku tamu, history, log telepon, notes, phonebook, pejabat).
package listing

import (
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	dateLayout      = "2006-01-02"
)

// Field mengambil nilai teks dari satu baris.
type Field[T any] func(T) string

// Predicate memutuskan apakah baris ikut hasil.
type Predicate[T any] func(T) bool

// Page adalah satu halaman hasil.
type Page[T any] struct {
	Items         []T `json:"items"`
	CurrentPage   int `json:"currentPage"`
	PageSize      int `json:"pageSize"`
	TotalPages    int `json:"totalPages"`
	TotalMatching int `json:"totalMatching"`
}

// Search cocok kalau salah satu field mengandung term (tidak peka huruf besar/kecil).
// Term kosong tidak membatasi.
func Search[T any](term string, fields ...Field[T]) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals cocok kalau field sama persis dengan value. Value kosong tidak membatasi.
func Equals[T any](value string, field Field[T]) Predicate[T] {
	if value == "" {
		return nil
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// OneOf cocok kalau field salah satu dari values. Nilai kosong di baris tidak pernah cocok.
func OneOf[T any](values []string, field Field[T]) Predicate[T] {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(item T) bool {
		v := field(item)
		if v == "" {
			return false
		}
		_, ok := set[v]
		return ok
	}
}

// DateRange cocok kalau tanggal (YYYY-MM-DD) dari field ada di [from, to].
// Batas kosong berarti tidak dibatasi di sisi itu. Baris yang tanggalnya
// tidak terbaca dikeluarkan kalau ada batas.
func DateRange[T any](from, to string, field Field[T]) Predicate[T] {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		return nil
	}
	return func(item T) bool {
		d, ok := DatePart(field(item))
		if !ok {
			return false
		}
		if from != "" && d < from {
			return false
		}
		if to != "" && d > to {
			return false
		}
		return true
	}
}

// DatePart mengambil bagian YYYY-MM-DD dari "YYYY-MM-DD", "YYYY-MM-DD HH:MM:SS"
// atau timestamp ISO.
func DatePart(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return "", false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local).Format(dateLayout), true
	}
	d := s[:len(dateLayout)]
	if _, err := time.Parse(dateLayout, d); err != nil {
		return "", false
	}
	return d, true
}

// Filter mengembalikan semua baris yang lolos semua predicate (AND).
// Predicate nil diabaikan.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Apply memfilter lalu memotong satu halaman. page di-clamp ke [1, totalPages].
func Apply[T any](items []T, pageSize, page int, preds ...Predicate[T]) Page[T] {
	matching := Filter(items, preds...)
	return Paginate(matching, pageSize, page)
}

// Paginate memotong satu halaman dari hasil yang sudah difilter.
func Paginate[T any](matching []T, pageSize, page int) Page[T] {
	pageSize = NormalizePageSize(pageSize)
	total := len(matching)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:         matching[start:end],
		CurrentPage:   page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
		TotalMatching: total,
	}
}

func NormalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// TotalPages = ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}
