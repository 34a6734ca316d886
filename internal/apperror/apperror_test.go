package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		status int
	}{
		{"validation", Validation("nama wajib diisi"), ErrValidation, http.StatusBadRequest},
		{"not found", NotFound("tamu %s tidak ditemukan", "TM1"), ErrNotFound, http.StatusNotFound},
		{"store", Store("gagal simpan", errors.New("dial tcp")), ErrStore, http.StatusInternalServerError},
		{"auth", Auth("password salah"), ErrAuth, http.StatusUnauthorized},
		{"plain", errors.New("x"), nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
			if tc.target != nil {
				assert.ErrorIs(t, tc.err, tc.target)
				assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.target)
			}
		})
	}
}

func TestStore(t *testing.T) {
	assert.Nil(t, Store("x", nil))

	nf := NotFound("tidak ada")
	assert.Same(t, nf, Store("gagal", nf), "app errors are not re-wrapped")

	cause := errors.New("connection refused")
	err := Store("gagal simpan", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "nama wajib diisi", Message(Validation("nama wajib diisi")))
	assert.Equal(t, "Terjadi kesalahan pada server", Message(errors.New("raw driver error")))
	assert.Equal(t, "gagal simpan", Message(Store("gagal simpan", errors.New("x"))))
}
