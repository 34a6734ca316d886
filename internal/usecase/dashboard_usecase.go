package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Palet kategori tamu untuk grafik distribusi
var KategoriPalette = []KategoriBucket{
	{Kategori: "VIP", Warna: "#F59E0B"},
	{Kategori: "Class1", Warna: "#3B82F6"},
	{Kategori: "Class2", Warna: "#10B981"},
	{Kategori: "Class3", Warna: "#8B5CF6"},
	{Kategori: "Lainnya", Warna: "#9CA3AF"},
}

type KategoriBucket struct {
	Kategori string `json:"kategori"`
	Jumlah   int    `json:"jumlah"`
	Warna    string `json:"warna"`
}

type DashboardStats struct {
	Total       int              `json:"total"`
	HariIni     int              `json:"hariIni"`
	MingguIni   int              `json:"mingguIni"`
	BulanIni    int              `json:"bulanIni"`
	Aktif       int              `json:"aktif"`
	Selesai     int              `json:"selesai"`
	DeltaHari   string           `json:"deltaHari"`
	DeltaMinggu string           `json:"deltaMinggu"`
	Kategori    []KategoriBucket `json:"kategori"`
}

type DailyCount struct {
	Tanggal string `json:"tanggal"`
	Jumlah  int    `json:"jumlah"`
}

type KeperluanCount struct {
	Keperluan string `json:"keperluan"`
	Jumlah    int    `json:"jumlah"`
}

type DashboardTrends struct {
	Harian    []DailyCount     `json:"harian"`
	Keperluan []KeperluanCount `json:"keperluan"`
	Delta     string           `json:"delta"`
}

// DashboardUsecase menghitung statistik dengan scan penuh tabletamu.
type DashboardUsecase struct {
	repo repository.DashboardRepository
}

func NewDashboardUsecase(repo repository.DashboardRepository) *DashboardUsecase {
	return &DashboardUsecase{repo: repo}
}

func (u *DashboardUsecase) Stats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	rows, err := u.repo.ScanTamu(ctx)
	if err != nil {
		return nil, err
	}

	today := dayStart(now)
	stats := &DashboardStats{Total: len(rows)}
	buckets := make(map[string]int, len(KategoriPalette))
	kemarin, mingguLalu := 0, 0

	for _, r := range rows {
		age := daysBetween(dayStart(r.JamDatang), today)
		switch {
		case age == 0:
			stats.HariIni++
		case age == 1:
			kemarin++
		}
		if age >= 0 && age < 7 {
			stats.MingguIni++
		} else if age >= 7 && age < 14 {
			mingguLalu++
		}
		if age >= 0 && age < 30 {
			stats.BulanIni++
		}

		status := deref(r.StatusTamu)
		switch status {
		case model.StatusOpen, model.StatusEntry:
			stats.Aktif++
		case model.StatusClosed:
			stats.Selesai++
		}

		buckets[kategoriBucket(deref(r.CatTamu))]++
	}

	for _, b := range KategoriPalette {
		b.Jumlah = buckets[b.Kategori]
		stats.Kategori = append(stats.Kategori, b)
	}
	stats.DeltaHari = Delta(stats.HariIni, kemarin)
	stats.DeltaMinggu = Delta(stats.MingguIni, mingguLalu)
	return stats, nil
}

// Trends menghitung jumlah tamu per hari untuk `days` hari terakhir
// (termasuk hari ini) dan rincian keperluan di rentang yang sama.
func (u *DashboardUsecase) Trends(ctx context.Context, now time.Time, days int) (*DashboardTrends, error) {
	if days <= 0 {
		days = 7
	}
	if days > 31 {
		days = 31
	}
	rows, err := u.repo.ScanTamu(ctx)
	if err != nil {
		return nil, err
	}

	today := dayStart(now)
	perDay := make([]int, days)
	keperluan := make(map[string]int)

	for _, r := range rows {
		age := daysBetween(dayStart(r.JamDatang), today)
		if age < 0 || age >= days {
			continue
		}
		perDay[days-1-age]++
		k := deref(r.Keperluan)
		if k == "" {
			k = "Lainnya"
		}
		keperluan[k]++
	}

	res := &DashboardTrends{}
	for i := 0; i < days; i++ {
		res.Harian = append(res.Harian, DailyCount{
			Tanggal: today.AddDate(0, 0, i-days+1).Format(dateLayout),
			Jumlah:  perDay[i],
		})
	}
	for k, n := range keperluan {
		res.Keperluan = append(res.Keperluan, KeperluanCount{Keperluan: k, Jumlah: n})
	}
	sort.Slice(res.Keperluan, func(i, j int) bool {
		if res.Keperluan[i].Jumlah != res.Keperluan[j].Jumlah {
			return res.Keperluan[i].Jumlah > res.Keperluan[j].Jumlah
		}
		return res.Keperluan[i].Keperluan < res.Keperluan[j].Keperluan
	})

	previous := 0
	if days >= 2 {
		previous = perDay[days-2]
	}
	res.Delta = Delta(perDay[days-1], previous)
	return res, nil
}

// Delta menghitung perubahan (current-previous)/previous dalam persen.
// previous 0: "+100%" kalau current > 0, "0%" kalau current juga 0.
func Delta(current, previous int) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	pct := float64(current-previous) / float64(previous) * 100
	if pct > 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

func kategoriBucket(cat string) string {
	for _, b := range KategoriPalette {
		if b.Kategori == cat {
			return cat
		}
	}
	return "Lainnya"
}

func dayStart(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// daysBetween menghitung selisih hari kalender, aman terhadap pergantian DST.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 12, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 12, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
