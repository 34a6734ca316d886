package repository

import (
	"context"

	"buku-tamu-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return wrapErr(r.db.WithContext(ctx).Create(user).Error, "", "Gagal menyimpan pengguna")
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, wrapErr(err, "Pengguna tidak ditemukan", "Gagal mengambil pengguna")
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, wrapErr(err, "Pengguna tidak ditemukan", "Gagal mengambil pengguna")
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hashed string) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("iduser = ?", id).Update("password", hashed).Error
	return wrapErr(err, "", "Gagal update password")
}
