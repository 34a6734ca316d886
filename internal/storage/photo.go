package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"buku-tamu-backend/internal/apperror"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	DefaultMaxWidth = 800
	maxPhotoBytes   = 5 << 20
)

// PhotoStore menerima foto (data URI dari kamera atau file upload),
// mengecilkan lebarnya, menyimpan sebagai JPEG, dan mengembalikan URL.
type PhotoStore struct {
	provider Provider
	maxWidth int
	now      func() time.Time
}

func NewPhotoStore(p Provider, maxWidth int) *PhotoStore {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &PhotoStore{provider: p, maxWidth: maxWidth, now: time.Now}
}

// IsDataURI true untuk "data:image/...;base64,..."
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}

// SaveDataURI menyimpan foto inline. String yang bukan data URI (URL atau
// path yang sudah ada) dikembalikan apa adanya.
func (s *PhotoStore) SaveDataURI(ctx context.Context, folder, value string) (string, error) {
	if !IsDataURI(value) {
		return value, nil
	}
	encoded := value[strings.Index(value, ";base64,")+len(";base64,"):]
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperror.Validation("Foto tidak valid")
	}
	return s.save(ctx, folder, bytes.NewReader(raw))
}

func (s *PhotoStore) SaveUpload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxPhotoBytes {
		return "", apperror.Validation("Ukuran foto maksimal 5MB")
	}
	src, err := fh.Open()
	if err != nil {
		return "", apperror.Validation("Gagal membuka file foto")
	}
	defer src.Close()
	return s.save(ctx, folder, src)
}

func (s *PhotoStore) save(ctx context.Context, folder string, r io.Reader) (string, error) {
	img, err := imaging.Decode(io.LimitReader(r, maxPhotoBytes), imaging.AutoOrientation(true))
	if err != nil {
		return "", apperror.Validation("Format foto tidak didukung")
	}
	if img.Bounds().Dx() > s.maxWidth {
		img = imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("encode foto: %w", err)
	}

	key := fmt.Sprintf("%s/%s-%s.jpg", folder, s.now().Format("20060102"), uuid.NewString())
	url, err := s.provider.Put(ctx, key, &buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return "", apperror.Store("Gagal menyimpan foto", err)
	}
	return url, nil
}

// Remove menghapus foto yang pernah disimpan lewat store ini. URL luar
// atau kosong diabaikan.
func (s *PhotoStore) Remove(ctx context.Context, url string) error {
	key, ok := s.provider.Key(url)
	if !ok {
		return nil
	}
	if err := s.provider.Delete(ctx, key); err != nil {
		return apperror.Store("Gagal menghapus foto", err)
	}
	return nil
}
