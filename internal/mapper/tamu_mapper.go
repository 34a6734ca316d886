// Package mapper menerjemahkan payload tamu dari client ke baris tabletamu dan sebaliknya.
package mapper

import (
	"strings"
	"time"

	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/sanitize"
)

// Format timestamp di payload dan response
const TimeLayout = "2006-01-02 15:04:05"

var acceptedLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// TamuPayload adalah bentuk data tamu yang dikirim/diterima client.
// Field nil berarti tidak dikirim.
type TamuPayload struct {
	IDVisit     string  `json:"idvisit,omitempty"`
	Nama        *string `json:"nama" validate:"required,notblank"`
	Instansi    *string `json:"instansi"`
	Keperluan   *string `json:"keperluan"`
	Tujuan      *string `json:"tujuan"`
	Divisi      *string `json:"divisi"`
	JenisKartu  *string `json:"jenisKartu"`
	NoKartu     *string `json:"noKartu"`
	Kategori    *string `json:"kategori"`
	JamDatang   *string `json:"jamDatang"`
	JamKeluar   *string `json:"jamKeluar"`
	Foto        *string `json:"foto"`
	NoIDCard    *string `json:"noIdCard"`
	Status      *string `json:"status"`
	Keterangan  *string `json:"keterangan"`
	GroInput    *string `json:"groInput"`
	PosGro      *string `json:"posGro"`
	FotoID      *string `json:"fotoId"`
	StatusTamu  *string `json:"statusTamu" validate:"omitempty,oneof=Open Entry Closed"`
	RuangTujuan *string `json:"ruangTujuan"`
}

// ToRow memetakan payload ke baris tabletamu. IDVisit dan JamDatang
// diisi dari payload kalau ada; pemanggil yang menentukan nilai akhirnya.
func ToRow(p TamuPayload) (model.Tamu, error) {
	row := model.Tamu{
		IDVisit:     p.IDVisit,
		NamaTamu:    p.Nama,
		Instansi:    p.Instansi,
		Keperluan:   p.Keperluan,
		Tujuan:      p.Tujuan,
		Divisi:      p.Divisi,
		JenisID:     p.JenisKartu,
		NoID:        p.NoKartu,
		CatTamu:     p.Kategori,
		Foto:        p.Foto,
		NoIDCard:    p.NoIDCard,
		Status:      p.Status,
		Ket:         sanitize.TextPtr(p.Keterangan),
		GroInput:    p.GroInput,
		PosGro:      p.PosGro,
		FotoID:      p.FotoID,
		StatusTamu:  p.StatusTamu,
		RuangTujuan: p.RuangTujuan,
	}

	datang, err := ParseTime(p.JamDatang)
	if err != nil {
		return model.Tamu{}, apperror.Validation("Format jamDatang tidak valid")
	}
	if datang != nil {
		row.JamDatang = *datang
	}

	keluar, err := ParseTime(p.JamKeluar)
	if err != nil {
		return model.Tamu{}, apperror.Validation("Format jamKeluar tidak valid")
	}
	row.JamKeluar = keluar

	return row, nil
}

// FromRow memetakan baris ke payload response. Field tampilan utama
// selalu terisi (string kosong kalau NULL); field lain tetap nil.
func FromRow(row model.Tamu) TamuPayload {
	p := TamuPayload{
		IDVisit:     row.IDVisit,
		Nama:        orEmpty(row.NamaTamu),
		Instansi:    orEmpty(row.Instansi),
		Keperluan:   orEmpty(row.Keperluan),
		Tujuan:      orEmpty(row.Tujuan),
		Divisi:      orEmpty(row.Divisi),
		JenisKartu:  row.JenisID,
		NoKartu:     row.NoID,
		Kategori:    orEmpty(row.CatTamu),
		Foto:        row.Foto,
		NoIDCard:    row.NoIDCard,
		Status:      row.Status,
		Keterangan:  row.Ket,
		GroInput:    row.GroInput,
		PosGro:      row.PosGro,
		FotoID:      row.FotoID,
		StatusTamu:  row.StatusTamu,
		RuangTujuan: row.RuangTujuan,
	}
	if !row.JamDatang.IsZero() {
		p.JamDatang = FormatTime(&row.JamDatang)
	}
	p.JamKeluar = FormatTime(row.JamKeluar)
	return p
}

func FromRows(rows []model.Tamu) []TamuPayload {
	out := make([]TamuPayload, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRow(r))
	}
	return out
}

// ParseTime membaca timestamp dari payload. nil atau string kosong -> nil.
func ParseTime(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	var lastErr error
	for _, layout := range acceptedLayouts {
		t, err := time.ParseInLocation(layout, v, time.Local)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(time.Local).Format(TimeLayout)
	return &s
}

func orEmpty(s *string) *string {
	if s == nil {
		empty := ""
		return &empty
	}
	return s
}
