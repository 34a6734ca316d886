package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"buku-tamu-backend/internal/apperror"
	"buku-tamu-backend/internal/listing"
	"buku-tamu-backend/internal/mapper"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/validation"
)

const (
	// Batas baris GET /tamu supaya response tidak membengkak
	MaxListTamu = 100
	maxIDRetry  = 5
)

// Nama filter yang dibaca dari Cursor untuk view tamu
const (
	FilterSearch    = "search"
	FilterKategori  = "kategori"
	FilterKeperluan = "keperluan"
	FilterStatus    = "statusTamu"
	FilterFrom      = "from"
	FilterTo        = "to"
)

// PhotoSaver menyimpan foto data URI dan menghapusnya lagi lewat URL.
type PhotoSaver interface {
	SaveDataURI(ctx context.Context, folder, value string) (string, error)
	Remove(ctx context.Context, url string) error
}

type TamuUsecase struct {
	repo   repository.TamuRepository
	ids    *mapper.VisitIDGenerator
	photos PhotoSaver
	now    func() time.Time
	log    *slog.Logger
}

func NewTamuUsecase(repo repository.TamuRepository, photos PhotoSaver, log *slog.Logger) *TamuUsecase {
	return &TamuUsecase{
		repo:   repo,
		ids:    mapper.ProcessVisitIDGenerator(),
		photos: photos,
		now:    time.Now,
		log:    log,
	}
}

// Create mencatat tamu check-in. jamdatang selalu waktu sekarang.
func (u *TamuUsecase) Create(ctx context.Context, p mapper.TamuPayload) (string, error) {
	if err := validation.Struct(p); err != nil {
		return "", err
	}
	row, err := mapper.ToRow(p)
	if err != nil {
		return "", err
	}
	row.JamDatang = u.now()
	if err := checkJamKeluar(row); err != nil {
		return "", err
	}
	if err := u.storePhotos(ctx, &row); err != nil {
		return "", err
	}

	id, err := u.nextFreeID(ctx)
	if err != nil {
		return "", err
	}
	row.IDVisit = id

	if err := u.repo.Create(ctx, &row); err != nil {
		return "", err
	}
	u.log.InfoContext(ctx, "tamu check-in", "idvisit", id)
	return id, nil
}

// nextFreeID memastikan id belum dipakai di tabel (mis. proses lain di jam yang sama).
func (u *TamuUsecase) nextFreeID(ctx context.Context) (string, error) {
	for i := 0; i < maxIDRetry; i++ {
		id := u.ids.Next()
		exists, err := u.repo.ExistsByID(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
		u.log.WarnContext(ctx, "idvisit sudah dipakai, generate ulang", "idvisit", id)
	}
	return "", apperror.Store("Gagal membuat idvisit unik", fmt.Errorf("%d percobaan bentrok", maxIDRetry))
}

func (u *TamuUsecase) List(ctx context.Context, limit int) ([]mapper.TamuPayload, error) {
	if limit <= 0 || limit > MaxListTamu {
		limit = MaxListTamu
	}
	rows, err := u.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapper.FromRows(rows), nil
}

func (u *TamuUsecase) Get(ctx context.Context, id string) (*mapper.TamuPayload, error) {
	row, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := mapper.FromRow(*row)
	return &p, nil
}

// Update menimpa semua field yang bisa diubah. idvisit tetap; jamdatang
// hanya diganti kalau payload membawa nilai yang valid.
func (u *TamuUsecase) Update(ctx context.Context, id string, p mapper.TamuPayload) error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	row, err := mapper.ToRow(p)
	if err != nil {
		return err
	}
	row.IDVisit = existing.IDVisit
	if row.JamDatang.IsZero() {
		row.JamDatang = existing.JamDatang
	}
	if err := checkJamKeluar(row); err != nil {
		return err
	}
	if err := u.storePhotos(ctx, &row); err != nil {
		return err
	}
	return u.repo.Replace(ctx, &row)
}

// SetStatus hanya mengubah statustamu. Semua perpindahan status diizinkan;
// saat menjadi Closed dan jamkeluar masih kosong, jamkeluar diisi sekarang.
func (u *TamuUsecase) SetStatus(ctx context.Context, id, status string) error {
	if !model.IsStatusTamuValid(status) {
		return apperror.Validation("Status tamu harus Open, Entry, atau Closed")
	}
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var jamKeluar *time.Time
	if status == model.StatusClosed && existing.JamKeluar == nil {
		now := u.now()
		if now.Before(existing.JamDatang) {
			now = existing.JamDatang
		}
		jamKeluar = &now
	}
	if err := u.repo.UpdateStatus(ctx, id, status, jamKeluar); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "status tamu diubah", "idvisit", id, "status", status)
	return nil
}

// Checkout menutup kunjungan.
func (u *TamuUsecase) Checkout(ctx context.Context, id string) error {
	return u.SetStatus(ctx, id, model.StatusClosed)
}

// Delete menghapus baris tamu lalu file foto tamu dan foto kartunya.
// Gagal menghapus file hanya dicatat di log.
func (u *TamuUsecase) Delete(ctx context.Context, id string) error {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "data tamu dihapus", "idvisit", id)

	if u.photos == nil {
		return nil
	}
	for _, url := range []*string{existing.Foto, existing.FotoID} {
		if url == nil || *url == "" {
			continue
		}
		if err := u.photos.Remove(ctx, *url); err != nil {
			u.log.WarnContext(ctx, "gagal menghapus foto tamu", "idvisit", id, "url", *url, "error", err)
		}
	}
	return nil
}

// GuestBook: tamu dengan status Open/Entry, lalu filter pengguna.
func (u *TamuUsecase) GuestBook(ctx context.Context, c *listing.Cursor) (listing.Page[mapper.TamuPayload], error) {
	return u.view(ctx, c, model.StatusBukuTamu)
}

// History: tamu dengan status Closed, lalu filter pengguna.
func (u *TamuUsecase) History(ctx context.Context, c *listing.Cursor) (listing.Page[mapper.TamuPayload], error) {
	return u.view(ctx, c, model.StatusHistory)
}

func (u *TamuUsecase) view(ctx context.Context, c *listing.Cursor, statuses []string) (listing.Page[mapper.TamuPayload], error) {
	rows, err := u.repo.FindAll(ctx)
	if err != nil {
		return listing.Page[mapper.TamuPayload]{}, err
	}
	preds := append([]listing.Predicate[mapper.TamuPayload]{
		listing.OneOf(statuses, fieldStatusTamu),
	}, TamuFilters(c)...)
	return listing.Select(c, mapper.FromRows(rows), preds...), nil
}

// TamuFilters menyusun predicate dari nilai filter di Cursor.
func TamuFilters(c *listing.Cursor) []listing.Predicate[mapper.TamuPayload] {
	return []listing.Predicate[mapper.TamuPayload]{
		listing.Search(c.Filter(FilterSearch),
			field(func(p mapper.TamuPayload) *string { return p.Nama }),
			field(func(p mapper.TamuPayload) *string { return p.Instansi }),
			field(func(p mapper.TamuPayload) *string { return p.Tujuan }),
			field(func(p mapper.TamuPayload) *string { return p.Divisi }),
			field(func(p mapper.TamuPayload) *string { return p.NoKartu }),
			field(func(p mapper.TamuPayload) *string { return p.NoIDCard }),
		),
		listing.Equals(c.Filter(FilterKategori), field(func(p mapper.TamuPayload) *string { return p.Kategori })),
		listing.Equals(c.Filter(FilterKeperluan), field(func(p mapper.TamuPayload) *string { return p.Keperluan })),
		listing.Equals(c.Filter(FilterStatus), fieldStatusTamu),
		listing.DateRange(c.Filter(FilterFrom), c.Filter(FilterTo), field(func(p mapper.TamuPayload) *string { return p.JamDatang })),
	}
}

var fieldStatusTamu = field(func(p mapper.TamuPayload) *string { return p.StatusTamu })

func field(get func(mapper.TamuPayload) *string) listing.Field[mapper.TamuPayload] {
	return func(p mapper.TamuPayload) string {
		if v := get(p); v != nil {
			return *v
		}
		return ""
	}
}

// Report mengambil tamu yang datang di rentang tanggal [from, to] (YYYY-MM-DD).
func (u *TamuUsecase) Report(ctx context.Context, from, to string) ([]mapper.TamuPayload, error) {
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return nil, apperror.Validation("Tanggal awal tidak valid")
	}
	end, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return nil, apperror.Validation("Tanggal akhir tidak valid")
	}
	if end.Before(start) {
		return nil, apperror.Validation("Tanggal akhir sebelum tanggal awal")
	}
	rows, err := u.repo.FindByArrival(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return mapper.FromRows(rows), nil
}

func (u *TamuUsecase) storePhotos(ctx context.Context, row *model.Tamu) error {
	if u.photos == nil {
		return nil
	}
	for _, f := range []struct {
		folder string
		val    **string
	}{{"tamu", &row.Foto}, {"kartu", &row.FotoID}} {
		if *f.val == nil {
			continue
		}
		url, err := u.photos.SaveDataURI(ctx, f.folder, **f.val)
		if err != nil {
			return err
		}
		*f.val = &url
	}
	return nil
}

func checkJamKeluar(row model.Tamu) error {
	if row.JamKeluar != nil && row.JamKeluar.Before(row.JamDatang) {
		return apperror.Validation("Jam keluar tidak boleh sebelum jam datang")
	}
	return nil
}
