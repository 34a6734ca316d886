package validation

import (
	"testing"

	"buku-tamu-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Nama   *string `validate:"required,notblank"`
	Status string  `validate:"omitempty,oneof=Open Closed"`
}

func TestStruct(t *testing.T) {
	nama := "Budi"
	empty := ""

	assert.NoError(t, Struct(sample{Nama: &nama}))
	assert.NoError(t, Struct(sample{Nama: &nama, Status: "Closed"}))

	err := Struct(sample{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Message(err), "Nama (required)")

	err = Struct(sample{Nama: &empty, Status: "Pending"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Message(err), "Nama (notblank)")
	assert.Contains(t, apperror.Message(err), "Status (oneof)")

	spasi := "   "
	err = Struct(sample{Nama: &spasi})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Message(err), "Nama (notblank)")
}
