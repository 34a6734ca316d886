package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tamu dari PT A & B", "Tamu dari PT A & B"},
		{"<b>penting</b> segera", "penting segera"},
		{"<script>alert(1)</script>ok", "ok"},
		{"  spasi  ", "  spasi  "},
		{"  <i>miring</i> ", "  miring "},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Text(tc.in), tc.in)
	}
}

func TestTextPtr(t *testing.T) {
	assert.Nil(t, TextPtr(nil))
	in := "<i>x</i>"
	assert.Equal(t, "x", *TextPtr(&in))
}
