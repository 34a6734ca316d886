package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 24 * time.Hour

type AuthUsecase struct {
	repo   *repository.UserRepository
	secret []byte
	log    *slog.Logger
}

func NewAuthUsecase(repo *repository.UserRepository, secret string, log *slog.Logger) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: []byte(secret), log: log}
}

func (u *AuthUsecase) Register(ctx context.Context, username, password, nama, role, pos string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, apperror.Validation("Username dan password wajib diisi")
	}
	// 1. Hashing Password
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2. Simpan ke Database
	user := &model.User{
		Username: username,
		Password: string(hashed),
		Nama:     nama,
		Role:     role,
		Pos:      pos,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan username
	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, apperror.Auth("Username atau password salah")
		}
		return "", nil, err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		u.log.WarnContext(ctx, "login gagal", "username", username)
		return "", nil, apperror.Auth("Username atau password salah")
	}

	// 3. Jika benar, buat Token JWT
	token, err := u.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.Validation("Password baru minimal 6 karakter")
	}
	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.Auth("Password lama salah")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.repo.UpdatePassword(ctx, userID, string(hashed))
}

func (u *AuthUsecase) GenerateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.IDUser,
		"username": user.Username,
		"role":     user.Role,
		"pos":      user.Pos,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
