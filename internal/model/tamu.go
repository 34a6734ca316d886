package model

import "time"

// Status kunjungan tamu (kolom statustamu)
const (
	StatusOpen   = "Open"
	StatusEntry  = "Entry"
	StatusClosed = "Closed"
)

var StatusTamuValid = []string{StatusOpen, StatusEntry, StatusClosed}

// Status aktif tampil di Buku Tamu, Closed hanya di History
var StatusBukuTamu = []string{StatusOpen, StatusEntry}
var StatusHistory = []string{StatusClosed}

// Tamu adalah satu kunjungan tamu (tabel tabletamu).
// Kolom teks nullable: nil berarti "tidak diisi", beda dengan string kosong.
type Tamu struct {
	IDVisit     string     `gorm:"column:idvisit;primaryKey;size:20"`
	NamaTamu    *string    `gorm:"column:namatamu;size:100"`
	Instansi    *string    `gorm:"column:instansi;size:150"`
	Keperluan   *string    `gorm:"column:keperluan;size:100"`
	Tujuan      *string    `gorm:"column:tujuan;size:150"`
	Divisi      *string    `gorm:"column:divisi;size:100"`
	JenisID     *string    `gorm:"column:jenisid;size:30"`
	NoID        *string    `gorm:"column:noid;size:50"`
	CatTamu     *string    `gorm:"column:cattamu;size:20"`
	JamDatang   time.Time  `gorm:"column:jamdatang;not null;index"`
	JamKeluar   *time.Time `gorm:"column:jamkeluar"`
	Foto        *string    `gorm:"column:foto;type:longtext"`
	NoIDCard    *string    `gorm:"column:noidcard;size:30"`
	Status      *string    `gorm:"column:status;size:30"` // risk / flag
	Ket         *string    `gorm:"column:ket;type:text"`
	GroInput    *string    `gorm:"column:groinput;size:50"`
	PosGro      *string    `gorm:"column:posgro;size:50"`
	FotoID      *string    `gorm:"column:fotoid;type:longtext"`
	StatusTamu  *string    `gorm:"column:statustamu;size:10;index"`
	RuangTujuan *string    `gorm:"column:ruangtujuan;size:100"`
}

func (Tamu) TableName() string { return "tabletamu" }

func IsStatusTamuValid(status string) bool {
	for _, s := range StatusTamuValid {
		if s == status {
			return true
		}
	}
	return false
}
