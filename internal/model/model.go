package model

// All daftar model untuk AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Tamu{},
		&BukuTelepon{},
		&Notes{},
		&PhonebookTamu{},
		&PhonebookInternal{},
		&Jabatan{},
		&User{},
		&AktivitasPengguna{},
	}
}
