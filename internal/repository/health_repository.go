package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type HealthRepository interface {
	CountTamu(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db}
}

func (r *healthRepository) CountTamu(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tamu{}).Count(&count).Error
	return count, wrapErr(err, "", "Gagal menghitung tabletamu")
}

func (r *healthRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return wrapErr(err, "", "Database tidak tersedia")
	}
	return wrapErr(sqlDB.PingContext(ctx), "", "Database tidak tersedia")
}
