package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type PhonebookTamuRepository interface {
	GetAll(ctx context.Context) ([]model.PhonebookTamu, error)
	GetByID(ctx context.Context, noTelp string) (*model.PhonebookTamu, error)
	Create(ctx context.Context, kontak *model.PhonebookTamu) error
	Update(ctx context.Context, kontak *model.PhonebookTamu) error
	Delete(ctx context.Context, noTelp string) error
	// Rekey mengganti nomor telepon (primary key) sebuah kontak
	Rekey(ctx context.Context, oldNoTelp string, kontak *model.PhonebookTamu) error
}

type phonebookTamuRepository struct {
	*crudRepository[model.PhonebookTamu, string]
}

func NewPhonebookTamuRepository(db *gorm.DB) PhonebookTamuRepository {
	return &phonebookTamuRepository{newCrudRepository[model.PhonebookTamu, string](db, "notelp", "nama asc", "Kontak tamu")}
}

func (r *phonebookTamuRepository) Rekey(ctx context.Context, oldNoTelp string, kontak *model.PhonebookTamu) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notelp = ?", oldNoTelp).Delete(&model.PhonebookTamu{}).Error; err != nil {
			return err
		}
		return tx.Create(kontak).Error
	})
	return wrapErr(err, "", "Gagal update data Kontak tamu")
}

type PhonebookInternalRepository interface {
	GetAll(ctx context.Context) ([]model.PhonebookInternal, error)
	GetByID(ctx context.Context, id uint) (*model.PhonebookInternal, error)
	Create(ctx context.Context, kontak *model.PhonebookInternal) error
	Update(ctx context.Context, kontak *model.PhonebookInternal) error
	Delete(ctx context.Context, id uint) error
}

func NewPhonebookInternalRepository(db *gorm.DB) PhonebookInternalRepository {
	return newCrudRepository[model.PhonebookInternal, uint](db, "idtlp", "nama asc", "Kontak internal")
}
