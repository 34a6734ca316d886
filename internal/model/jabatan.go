package model

// Jabatan adalah data pejabat yang bisa jadi tujuan kunjungan.
type Jabatan struct {
	IDJabatan uint   `gorm:"column:idjabatan;primaryKey;autoIncrement" json:"idjabatan"`
	Nama      string `gorm:"column:nama;size:100" json:"nama" validate:"required"`
	Gedung    string `gorm:"column:gedung;size:50" json:"gedung"`
	Ruang     string `gorm:"column:ruang;size:50" json:"ruang"`
	Divisi    string `gorm:"column:divisi;size:100" json:"divisi"`
	Bidang    string `gorm:"column:bidang;size:100" json:"bidang"`
	Level     string `gorm:"column:level;size:50" json:"level"`
	Foto      string `gorm:"column:foto;type:longtext" json:"foto"`
}

func (Jabatan) TableName() string { return "jabatan" }
