package repository

import (
	"context"
	"time"

	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type TamuRepository interface {
	Create(ctx context.Context, tamu *model.Tamu) error
	ExistsByID(ctx context.Context, idVisit string) (bool, error)
	FindByID(ctx context.Context, idVisit string) (*model.Tamu, error)
	List(ctx context.Context, limit int) ([]model.Tamu, error)
	FindAll(ctx context.Context) ([]model.Tamu, error)
	FindByArrival(ctx context.Context, from, to time.Time) ([]model.Tamu, error)
	Replace(ctx context.Context, tamu *model.Tamu) error
	UpdateStatus(ctx context.Context, idVisit string, status string, jamKeluar *time.Time) error
	Delete(ctx context.Context, idVisit string) error
}

type tamuRepository struct {
	db *gorm.DB
}

func NewTamuRepository(db *gorm.DB) TamuRepository {
	return &tamuRepository{db}
}

func (r *tamuRepository) Create(ctx context.Context, tamu *model.Tamu) error {
	return wrapErr(r.db.WithContext(ctx).Create(tamu).Error, "", "Gagal menyimpan data tamu")
}

func (r *tamuRepository) ExistsByID(ctx context.Context, idVisit string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tamu{}).Where("idvisit = ?", idVisit).Count(&count).Error
	if err != nil {
		return false, wrapErr(err, "", "Gagal memeriksa data tamu")
	}
	return count > 0, nil
}

func (r *tamuRepository) FindByID(ctx context.Context, idVisit string) (*model.Tamu, error) {
	var tamu model.Tamu
	err := r.db.WithContext(ctx).Where("idvisit = ?", idVisit).First(&tamu).Error
	if err != nil {
		return nil, wrapErr(err, "Data tamu tidak ditemukan", "Gagal mengambil data tamu")
	}
	return &tamu, nil
}

func (r *tamuRepository) List(ctx context.Context, limit int) ([]model.Tamu, error) {
	var rows []model.Tamu
	err := r.db.WithContext(ctx).Order("jamdatang desc").Limit(limit).Find(&rows).Error
	return rows, wrapErr(err, "", "Gagal mengambil data tamu")
}

// FindAll mengambil seluruh tabel termasuk kolom foto. Payload list dikirim
// balik apa adanya lewat PUT, jadi foto harus ikut.
func (r *tamuRepository) FindAll(ctx context.Context) ([]model.Tamu, error) {
	var rows []model.Tamu
	err := r.db.WithContext(ctx).Order("jamdatang desc").Find(&rows).Error
	return rows, wrapErr(err, "", "Gagal mengambil data tamu")
}

func (r *tamuRepository) FindByArrival(ctx context.Context, from, to time.Time) ([]model.Tamu, error) {
	var rows []model.Tamu
	err := r.db.WithContext(ctx).Omit("foto", "fotoid").
		Where("jamdatang >= ? AND jamdatang < ?", from, to).
		Order("jamdatang asc").Find(&rows).Error
	return rows, wrapErr(err, "", "Gagal mengambil data tamu")
}

// Replace menimpa semua kolom baris dengan idvisit yang sama, termasuk yang nil.
func (r *tamuRepository) Replace(ctx context.Context, tamu *model.Tamu) error {
	err := r.db.WithContext(ctx).Model(&model.Tamu{}).
		Where("idvisit = ?", tamu.IDVisit).
		Select("*").Omit("idvisit").
		Updates(tamu).Error
	return wrapErr(err, "", "Gagal update data tamu")
}

func (r *tamuRepository) UpdateStatus(ctx context.Context, idVisit string, status string, jamKeluar *time.Time) error {
	updates := map[string]interface{}{"statustamu": status}
	if jamKeluar != nil {
		updates["jamkeluar"] = *jamKeluar
	}
	err := r.db.WithContext(ctx).Model(&model.Tamu{}).Where("idvisit = ?", idVisit).Updates(updates).Error
	return wrapErr(err, "", "Gagal update status tamu")
}

func (r *tamuRepository) Delete(ctx context.Context, idVisit string) error {
	res := r.db.WithContext(ctx).Where("idvisit = ?", idVisit).Delete(&model.Tamu{})
	if res.Error != nil {
		return wrapErr(res.Error, "", "Gagal menghapus data tamu")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Data tamu tidak ditemukan")
	}
	return nil
}
