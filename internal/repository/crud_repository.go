package repository

import (
	"context"

	"buku-tamu-backend/internal/apperror"

	"gorm.io/gorm"
)

// crudRepository berisi operasi dasar yang sama untuk tabel master
// (log telepon, notes, phonebook, pejabat).
type crudRepository[T any, K comparable] struct {
	db      *gorm.DB
	pk      string
	orderBy string
	label   string
}

func newCrudRepository[T any, K comparable](db *gorm.DB, pk, orderBy, label string) *crudRepository[T, K] {
	return &crudRepository[T, K]{db: db, pk: pk, orderBy: orderBy, label: label}
}

func (r *crudRepository[T, K]) GetAll(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).Order(r.orderBy).Find(&rows).Error
	return rows, wrapErr(err, r.label+" tidak ditemukan", "Gagal mengambil data "+r.label)
}

func (r *crudRepository[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where(r.pk+" = ?", id).First(&row).Error
	if err != nil {
		return nil, wrapErr(err, r.label+" tidak ditemukan", "Gagal mengambil data "+r.label)
	}
	return &row, nil
}

func (r *crudRepository[T, K]) Create(ctx context.Context, row *T) error {
	return wrapErr(r.db.WithContext(ctx).Create(row).Error, "", "Gagal menyimpan data "+r.label)
}

func (r *crudRepository[T, K]) Update(ctx context.Context, row *T) error {
	return wrapErr(r.db.WithContext(ctx).Save(row).Error, "", "Gagal update data "+r.label)
}

func (r *crudRepository[T, K]) Delete(ctx context.Context, id K) error {
	var row T
	res := r.db.WithContext(ctx).Where(r.pk+" = ?", id).Delete(&row)
	if res.Error != nil {
		return wrapErr(res.Error, "", "Gagal menghapus data "+r.label)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("%s tidak ditemukan", r.label)
	}
	return nil
}

func (r *crudRepository[T, K]) updateColumn(ctx context.Context, id K, column string, value interface{}) error {
	var row T
	res := r.db.WithContext(ctx).Model(&row).Where(r.pk+" = ?", id).Update(column, value)
	if res.Error != nil {
		return wrapErr(res.Error, "", "Gagal update data "+r.label)
	}
	return nil
}
