package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	ScanTamu(ctx context.Context) ([]model.Tamu, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// ScanTamu membaca seluruh tabletamu, hanya kolom yang dibutuhkan statistik.
func (r *dashboardRepository) ScanTamu(ctx context.Context) ([]model.Tamu, error) {
	var rows []model.Tamu
	err := r.db.WithContext(ctx).
		Select("idvisit", "jamdatang", "jamkeluar", "cattamu", "keperluan", "statustamu").
		Find(&rows).Error
	return rows, wrapErr(err, "", "Gagal mengambil data dashboard")
}
