package model

// Notes adalah memo internal antar petugas.
type Notes struct {
	IDNotes  uint   `gorm:"column:idnotes;primaryKey;autoIncrement" json:"idnotes"`
	Pengirim string `gorm:"column:pengirim;size:100" json:"pengirim" validate:"required"`
	Penerima string `gorm:"column:penerima;size:100" json:"penerima"`
	Tanggal  string `gorm:"column:tanggal;size:10;index" json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Pesan    string `gorm:"column:pesan;type:text" json:"pesan" validate:"required"`
	Status   string `gorm:"column:status;size:10;default:Open" json:"status" validate:"omitempty,oneof=Open Closed"`
	GroInput string `gorm:"column:groinput;size:50" json:"groInput"`
}

func (Notes) TableName() string { return "notes" }
