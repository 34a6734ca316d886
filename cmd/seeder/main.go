package main

import (
	"os"

	"buku-tamu-backend/config"
	"buku-tamu-backend/internal/database"
	"buku-tamu-backend/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	log.Info("memulai database seeding")

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("gagal koneksi database", "error", err)
		os.Exit(1)
	}

	opts := database.SeedOptions{
		AdminPassword: config.GetEnv("SEED_ADMIN_PASSWORD", "admin123"),
		GroPassword:   config.GetEnv("SEED_GRO_PASSWORD", "gro123"),
	}
	if err := database.SeedAll(db, opts, log); err != nil {
		log.Error("seeding gagal", "error", err)
		os.Exit(1)
	}
	log.Info("seeding selesai")
}
