package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type AktivitasRepository interface {
	Create(ctx context.Context, a *model.AktivitasPengguna) error
	Paginate(ctx context.Context, page, pageSize int, search string) ([]model.AktivitasPengguna, int64, error)
}

type aktivitasRepository struct {
	db *gorm.DB
}

func NewAktivitasRepository(db *gorm.DB) AktivitasRepository {
	return &aktivitasRepository{db}
}

func (r *aktivitasRepository) Create(ctx context.Context, a *model.AktivitasPengguna) error {
	return wrapErr(r.db.WithContext(ctx).Create(a).Error, "", "Gagal mencatat aktivitas")
}

// Paginate memakai LIMIT/OFFSET di database karena tabel ini terus bertambah.
func (r *aktivitasRepository) Paginate(ctx context.Context, page, pageSize int, search string) ([]model.AktivitasPengguna, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AktivitasPengguna{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username LIKE ? OR aksi LIKE ? OR role LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err, "", "Gagal menghitung aktivitas")
	}

	var rows []model.AktivitasPengguna
	err := query.Order("waktu desc, id desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, wrapErr(err, "", "Gagal mengambil aktivitas")
	}
	return rows, total, nil
}
