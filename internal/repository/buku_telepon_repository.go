package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type BukuTeleponRepository interface {
	GetAll(ctx context.Context) ([]model.BukuTelepon, error)
	GetByID(ctx context.Context, id uint) (*model.BukuTelepon, error)
	Create(ctx context.Context, log *model.BukuTelepon) error
	Update(ctx context.Context, log *model.BukuTelepon) error
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type bukuTeleponRepository struct {
	*crudRepository[model.BukuTelepon, uint]
}

func NewBukuTeleponRepository(db *gorm.DB) BukuTeleponRepository {
	return &bukuTeleponRepository{newCrudRepository[model.BukuTelepon, uint](db, "idbukutlp", "tanggal desc, jam desc", "Log telepon")}
}

func (r *bukuTeleponRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.updateColumn(ctx, id, "status", status)
}
