package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type JabatanRepository interface {
	GetAll(ctx context.Context) ([]model.Jabatan, error)
	GetByID(ctx context.Context, id uint) (*model.Jabatan, error)
	Create(ctx context.Context, jabatan *model.Jabatan) error
	Update(ctx context.Context, jabatan *model.Jabatan) error
	Delete(ctx context.Context, id uint) error
}

func NewJabatanRepository(db *gorm.DB) JabatanRepository {
	return newCrudRepository[model.Jabatan, uint](db, "idjabatan", "nama asc", "Pejabat")
}
