package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type NotesRepository interface {
	GetAll(ctx context.Context) ([]model.Notes, error)
	GetByID(ctx context.Context, id uint) (*model.Notes, error)
	Create(ctx context.Context, note *model.Notes) error
	Update(ctx context.Context, note *model.Notes) error
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type notesRepository struct {
	*crudRepository[model.Notes, uint]
}

func NewNotesRepository(db *gorm.DB) NotesRepository {
	return &notesRepository{newCrudRepository[model.Notes, uint](db, "idnotes", "tanggal desc, idnotes desc", "Catatan")}
}

func (r *notesRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.updateColumn(ctx, id, "status", status)
}
