package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"buku-tamu-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	rows []model.Tamu
	err  error
}

func (f *fakeDashboardRepo) ScanTamu(ctx context.Context) ([]model.Tamu, error) {
	return f.rows, f.err
}

func tamuAt(daysAgo int, kategori, status, keperluan string) model.Tamu {
	t := model.Tamu{JamDatang: fixedNow.AddDate(0, 0, -daysAgo)}
	if kategori != "" {
		t.CatTamu = &kategori
	}
	if status != "" {
		t.StatusTamu = &status
	}
	if keperluan != "" {
		t.Keperluan = &keperluan
	}
	return t
}

func TestDelta(t *testing.T) {
	assert.Equal(t, "+100%", Delta(10, 0))
	assert.Equal(t, "0%", Delta(0, 0))
	assert.Equal(t, "-50.0%", Delta(5, 10))
	assert.Equal(t, "+25.0%", Delta(5, 4))
	assert.Equal(t, "0.0%", Delta(3, 3))
	assert.Equal(t, "-100.0%", Delta(0, 7))
}

func TestDashboardUsecase_Stats(t *testing.T) {
	repo := &fakeDashboardRepo{rows: []model.Tamu{
		tamuAt(0, "VIP", model.StatusOpen, "Meeting"),
		tamuAt(0, "Class1", model.StatusEntry, "Meeting"),
		tamuAt(1, "VIP", model.StatusClosed, "Interview"),
		tamuAt(3, "Class3", model.StatusClosed, ""),
		tamuAt(8, "Tamu Umum", model.StatusClosed, ""),
		tamuAt(20, "", "", ""),
		tamuAt(45, "Class2", model.StatusOpen, ""),
	}}
	u := NewDashboardUsecase(repo)

	stats, err := u.Stats(context.Background(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 2, stats.HariIni)
	assert.Equal(t, 4, stats.MingguIni)
	assert.Equal(t, 6, stats.BulanIni)
	assert.Equal(t, 3, stats.Aktif)
	assert.Equal(t, 3, stats.Selesai)
	assert.Equal(t, "+100.0%", stats.DeltaHari)
	assert.Equal(t, "+300.0%", stats.DeltaMinggu)

	want := map[string]int{"VIP": 2, "Class1": 1, "Class2": 1, "Class3": 1, "Lainnya": 2}
	require.Len(t, stats.Kategori, len(KategoriPalette))
	for _, b := range stats.Kategori {
		assert.Equal(t, want[b.Kategori], b.Jumlah, b.Kategori)
		assert.NotEmpty(t, b.Warna)
	}
}

func TestDashboardUsecase_Trends(t *testing.T) {
	repo := &fakeDashboardRepo{rows: []model.Tamu{
		tamuAt(0, "", "", "Meeting"),
		tamuAt(0, "", "", "Meeting"),
		tamuAt(2, "", "", "Interview"),
		tamuAt(6, "", "", ""),
		tamuAt(7, "", "", "Meeting"),
	}}
	u := NewDashboardUsecase(repo)

	tr, err := u.Trends(context.Background(), fixedNow, 7)
	require.NoError(t, err)

	require.Len(t, tr.Harian, 7)
	assert.Equal(t, "2026-10-10", tr.Harian[0].Tanggal)
	assert.Equal(t, 1, tr.Harian[0].Jumlah)
	assert.Equal(t, "2026-10-14", tr.Harian[4].Tanggal)
	assert.Equal(t, 1, tr.Harian[4].Jumlah)
	assert.Equal(t, "2026-10-16", tr.Harian[6].Tanggal)
	assert.Equal(t, 2, tr.Harian[6].Jumlah)
	assert.Equal(t, "+100%", tr.Delta)

	assert.Equal(t, []KeperluanCount{
		{Keperluan: "Meeting", Jumlah: 2},
		{Keperluan: "Interview", Jumlah: 1},
		{Keperluan: "Lainnya", Jumlah: 1},
	}, tr.Keperluan)
}

func TestDashboardUsecase_StoreError(t *testing.T) {
	u := NewDashboardUsecase(&fakeDashboardRepo{err: errors.New("db down")})
	_, err := u.Stats(context.Background(), time.Now())
	assert.Error(t, err)
	_, err = u.Trends(context.Background(), time.Now(), 7)
	assert.Error(t, err)
}
