package model

// PhonebookTamu: kontak tamu, kuncinya nomor telepon.
type PhonebookTamu struct {
	NoTelp   string `gorm:"column:notelp;primaryKey;size:30" json:"noTelp" validate:"required"`
	Nama     string `gorm:"column:nama;size:100" json:"nama" validate:"required"`
	Instansi string `gorm:"column:instansi;size:150" json:"instansi"`
	Jabatan  string `gorm:"column:jabatan;size:100" json:"jabatan"`
	NoTelp2  string `gorm:"column:notelp2;size:30" json:"noTelp2"`
	Email    string `gorm:"column:email;size:100" json:"email" validate:"omitempty,email"`
	Alamat   string `gorm:"column:alamat;type:text" json:"alamat"`
}

func (PhonebookTamu) TableName() string { return "phonebook_tamu" }

// PhonebookInternal: kontak internal (pegawai/divisi).
type PhonebookInternal struct {
	IDTlp   uint   `gorm:"column:idtlp;primaryKey;autoIncrement" json:"idtlp"`
	Nama    string `gorm:"column:nama;size:100" json:"nama" validate:"required"`
	Divisi  string `gorm:"column:divisi;size:100" json:"divisi"`
	Jabatan string `gorm:"column:jabatan;size:100" json:"jabatan"`
	Ext     string `gorm:"column:ext;size:10" json:"ext"`
	NoHP    string `gorm:"column:nohp;size:30" json:"noHp"`
	Email   string `gorm:"column:email;size:100" json:"email" validate:"omitempty,email"`
	Lokasi  string `gorm:"column:lokasi;size:100" json:"lokasi"`
}

func (PhonebookInternal) TableName() string { return "phonebook_internal" }
