package database

import (
	"fmt"
	"log/slog"

	"buku-tamu-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions: password awal akun admin dan petugas GRO.
type SeedOptions struct {
	AdminPassword string
	GroPassword   string
}

// SeedAll mengisi akun awal dan data master contoh. Aman dijalankan berulang.
func SeedAll(db *gorm.DB, opts SeedOptions, log *slog.Logger) error {
	// 1. Seed Akun Admin & GRO
	users := []struct {
		user     model.User
		password string
	}{
		{model.User{Username: "admin", Nama: "Administrator", Role: model.RoleAdmin, Pos: "Kantor"}, opts.AdminPassword},
		{model.User{Username: "gro", Nama: "Petugas GRO", Role: model.RoleGRO, Pos: "Lobby Utama"}, opts.GroPassword},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password %s: %w", u.user.Username, err)
		}
		user := u.user
		if err := db.FirstOrCreate(&user, model.User{Username: user.Username}).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", user.Username, err)
		}
		// Paksa update password agar selalu sinkron meskipun user sudah ada
		if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
			return fmt.Errorf("update password %s: %w", user.Username, err)
		}
		log.Info("seeding user berhasil", "username", user.Username, "role", user.Role)
	}

	// 2. Seed Pejabat
	pejabat := []model.Jabatan{
		{Nama: "Direktur Utama", Gedung: "A", Ruang: "A-501", Divisi: "Direksi", Level: "Direktur"},
		{Nama: "Kepala Divisi SDM", Gedung: "A", Ruang: "A-302", Divisi: "SDM", Bidang: "Kepegawaian", Level: "Kepala Divisi"},
		{Nama: "Kepala Divisi Keuangan", Gedung: "B", Ruang: "B-201", Divisi: "Keuangan", Level: "Kepala Divisi"},
	}
	for _, j := range pejabat {
		if err := db.FirstOrCreate(&j, model.Jabatan{Nama: j.Nama}).Error; err != nil {
			return fmt.Errorf("seed pejabat %s: %w", j.Nama, err)
		}
	}

	// 3. Seed Phonebook Internal
	internal := []model.PhonebookInternal{
		{Nama: "Resepsionis Lobby", Divisi: "Umum", Ext: "100", Lokasi: "Lobby Utama"},
		{Nama: "Sekretariat Direksi", Divisi: "Direksi", Ext: "501", Lokasi: "Gedung A"},
	}
	for _, k := range internal {
		if err := db.FirstOrCreate(&k, model.PhonebookInternal{Nama: k.Nama}).Error; err != nil {
			return fmt.Errorf("seed kontak %s: %w", k.Nama, err)
		}
	}
	return nil
}
