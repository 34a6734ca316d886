package repository

import (
	"errors"

	"buku-tamu-backend/internal/apperror"

	"gorm.io/gorm"
)

// wrapErr menerjemahkan error GORM ke apperror. Record tidak ditemukan
// jadi NotFound, sisanya StoreError.
func wrapErr(err error, notFoundMsg, storeMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s", notFoundMsg)
	}
	return apperror.Store(storeMsg, err)
}
