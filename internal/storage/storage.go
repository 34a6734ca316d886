// Package storage menyimpan foto tamu dan foto kartu identitas, di disk lokal
// atau di bucket S3-compatible.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"buku-tamu-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider adalah tempat penyimpanan file.
type Provider interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// Key mengembalikan key dari URL hasil Put. false kalau URL bukan milik storage ini.
	Key(url string) (string, bool)
}

// New memilih S3 kalau bucket dan kredensial diisi, selain itu disk lokal.
func New(cfg *config.Config, log *slog.Logger) Provider {
	if cfg.S3Bucket != "" && cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		s3Store, err := NewS3Storage(cfg)
		if err == nil {
			log.Info("storage foto memakai S3", "bucket", cfg.S3Bucket)
			return s3Store
		}
		log.Warn("gagal inisialisasi S3, pakai storage lokal", "error", err)
	}
	log.Info("storage foto memakai disk lokal", "dir", cfg.UploadDir)
	return NewLocalStorage(cfg.UploadDir, "/uploads")
}

type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	full := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("buat folder upload: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("buat file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("tulis file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStorage) Key(url string) (string, bool) {
	return keyAfter(url, s.baseURL+"/")
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("hapus file: %w", err)
	}
	return nil
}

type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client, bucket: cfg.S3Bucket, publicURL: strings.TrimRight(cfg.S3PublicURL, "/")}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("upload ke s3: %w", err)
	}
	if s.publicURL == "" {
		return path.Join("/", s.bucket, key), nil
	}
	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Key(url string) (string, bool) {
	if s.publicURL == "" {
		return keyAfter(url, "/"+s.bucket+"/")
	}
	return keyAfter(url, s.publicURL+"/")
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("hapus dari s3: %w", err)
	}
	return nil
}

func keyAfter(url, prefix string) (string, bool) {
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
