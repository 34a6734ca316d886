package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName     string
	Port        string
	CorsOrigins []string
	LogLevel    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolSize int

	JWTSecret string
	UploadDir string

	// S3 storage foto tamu (opsional, kalau kosong pakai UploadDir)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load membaca .env (kalau ada) lalu environment variables sistem.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("File .env tidak ditemukan, menggunakan environment variables sistem")
	}

	return &Config{
		AppName:     GetEnv("APP_NAME", "buku-tamu-backend"),
		Port:        GetEnv("PORT", "3000"),
		CorsOrigins: splitList(GetEnv("CORS_ORIGIN", "http://localhost:5173")),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),

		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "3306"),
		DBUser:     GetEnv("DB_USER", "root"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBName:     GetEnv("DB_NAME", "bukutamu"),
		DBPoolSize: GetEnvAsInt("DB_POOL_SIZE", 10),

		JWTSecret: GetEnv("JWT_SECRET", "rahasia_negara"),
		UploadDir: GetEnv("UPLOAD_DIR", "./uploads"),

		S3Endpoint:  GetEnv("S3_ENDPOINT", ""),
		S3Region:    GetEnv("S3_REGION", "auto"),
		S3AccessKey: GetEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: GetEnv("S3_SECRET_KEY", ""),
		S3Bucket:    GetEnv("S3_BUCKET", ""),
		S3PublicURL: GetEnv("S3_PUBLIC_URL", ""),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
