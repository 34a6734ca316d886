// Package sanitize membersihkan teks bebas (keterangan, pesan) dari markup HTML.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text membuang semua tag HTML dan mengembalikan teks polos. Spasi di
// luar tag dibiarkan apa adanya.
func Text(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

// TextPtr seperti Text tapi mempertahankan nil.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	return &clean
}
