package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buku-tamu-backend/config"
	"buku-tamu-backend/internal/logging"
	"buku-tamu-backend/internal/routes"
	"buku-tamu-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	log.Info("memulai aplikasi", "name", cfg.AppName)
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("gagal koneksi database", "error", err)
		os.Exit(1)
	}

	app := routes.NewApp(&routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Photos: storage.NewPhotoStore(storage.New(cfg, log), storage.DefaultMaxWidth),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("mematikan server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("gagal mematikan server", "error", err)
		}
	}()

	log.Info("server siap", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server berhenti", "error", err)
		os.Exit(1)
	}
}
