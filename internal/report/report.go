// Package report membuat laporan kunjungan tamu dalam format XLSX.
package report

import (
	"bytes"
	"fmt"

	"buku-tamu-backend/internal/mapper"

	"github.com/xuri/excelize/v2"
)

const SheetTamu = "Laporan Tamu"

var tamuHeaders = []string{
	"No", "ID Visit", "Nama", "Instansi", "Keperluan", "Tujuan", "Divisi",
	"Kategori", "Jam Datang", "Jam Keluar", "Status", "GRO", "Pos", "Keterangan",
}

func tamuRow(i int, p mapper.TamuPayload) []interface{} {
	return []interface{}{
		i + 1, p.IDVisit, str(p.Nama), str(p.Instansi), str(p.Keperluan), str(p.Tujuan), str(p.Divisi),
		str(p.Kategori), str(p.JamDatang), str(p.JamKeluar), str(p.StatusTamu), str(p.GroInput), str(p.PosGro), str(p.Keterangan),
	}
}

// TamuWorkbook menulis daftar tamu ke satu sheet dengan judul periode di baris pertama
// dan header kolom di baris ketiga.
func TamuWorkbook(rows []mapper.TamuPayload, from, to string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTamu); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	f.SetCellValue(SheetTamu, "A1", fmt.Sprintf("Laporan Kunjungan Tamu %s s/d %s", from, to))
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(SheetTamu, "A1", "A1", titleStyle)

	for i, header := range tamuHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(SheetTamu, cell, header)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(tamuHeaders))
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	f.SetCellStyle(SheetTamu, "A3", lastCol+"3", headerStyle)

	for i, p := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		values := tamuRow(i, p)
		if err := f.SetSheetRow(SheetTamu, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	f.SetColWidth(SheetTamu, "A", "A", 6)
	f.SetColWidth(SheetTamu, "B", lastCol, 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
