package model

// Arah panggilan telepon
const (
	ArahKeluar = "Keluar"
	ArahMasuk  = "Masuk"
)

// BukuTelepon adalah catatan panggilan masuk/keluar di meja resepsionis.
type BukuTelepon struct {
	IDBukuTlp    uint   `gorm:"column:idbukutlp;primaryKey;autoIncrement" json:"idbukutlp"`
	NamaPenelpon string `gorm:"column:namapenelpon;size:100" json:"namaPenelpon" validate:"required"`
	NoPenelpon   string `gorm:"column:nopenelpon;size:30" json:"noPenelpon"`
	NamaPenerima string `gorm:"column:namapenerima;size:100" json:"namaPenerima"`
	NoPenerima   string `gorm:"column:nopenerima;size:30" json:"noPenerima"`
	Tanggal      string `gorm:"column:tanggal;size:10;index" json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Jam          string `gorm:"column:jam;size:8" json:"jam"`
	Arah         string `gorm:"column:arah;size:10" json:"arah" validate:"omitempty,oneof=Keluar Masuk"`
	Pesan        string `gorm:"column:pesan;type:text" json:"pesan"`
	Ket          string `gorm:"column:ket;type:text" json:"ket"`
	Status       string `gorm:"column:status;size:10;default:Open" json:"status" validate:"omitempty,oneof=Open Closed"`
	GroInput     string `gorm:"column:groinput;size:50" json:"groInput"`
}

func (BukuTelepon) TableName() string { return "bukutelepon" }
