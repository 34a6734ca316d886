package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"buku-tamu-backend/config"
	"buku-tamu-backend/internal/model"
	"buku-tamu-backend/internal/repository"
	"buku-tamu-backend/internal/storage"
	"buku-tamu-backend/internal/testutil"
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app   *fiber.App
	admin string
	gro   string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.NewDB(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		AppName:    "buku-tamu-test",
		DBName:     "bukutamu",
		JWTSecret:  "test-secret",
		UploadDir:  t.TempDir(),
		DBPoolSize: 1,
	}

	auth := usecase.NewAuthUsecase(repository.NewUserRepository(db), cfg.JWTSecret, log)
	token := func(username, role string) string {
		u, err := auth.Register(context.Background(), username, "rahasia1", username, role, "Lobby")
		require.NoError(t, err)
		tok, err := auth.GenerateToken(u)
		require.NoError(t, err)
		return tok
	}

	app := NewApp(&Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Photos: storage.NewPhotoStore(storage.NewLocalStorage(cfg.UploadDir, "/uploads"), storage.DefaultMaxWidth),
	})
	return &testApp{app: app, admin: token("admin1", model.RoleAdmin), gro: token("gro1", model.RoleGRO)}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

// doArray untuk endpoint yang membalas array JSON.
func (a *testApp) doArray(t *testing.T, path, token string) []map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out, "empty list must be [] not null")
	return out
}

func total(t *testing.T, body map[string]interface{}) int {
	t.Helper()
	p, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok, "pagination missing: %v", body)
	return int(p["total"].(float64))
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	resp, body := a.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "buku-tamu-test", body["name"])
	assert.EqualValues(t, 0, body["tabletamu_count"])
}

func TestAuthRequired(t *testing.T) {
	a := newTestApp(t)
	resp, _ := a.do(t, http.MethodGet, "/tamu", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp, _ = a.do(t, http.MethodGet, "/api/notes", "bukan-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	a := newTestApp(t)
	resp, body := a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "gro1", "password": "rahasia1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "gro1", user["username"])
	assert.NotContains(t, user, "password")

	resp, _ = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "gro1", "password": "salah"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPut, "/api/auth/update-password", a.gro, fiber.Map{"oldPassword": "rahasia1", "newPassword": "barubaru"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "gro1", "password": "barubaru"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTamuLifecycle(t *testing.T) {
	a := newTestApp(t)

	resp, body := a.do(t, http.MethodPost, "/tamu", a.gro, fiber.Map{"nama": "Budi", "kategori": "VIP", "statusTamu": "Open"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	id := body["idvisit"].(string)
	assert.Len(t, id, 17)

	resp, body = a.do(t, http.MethodPost, "/tamu", a.gro, fiber.Map{"instansi": "PT Tanpa Nama"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "Nama")

	for _, blank := range []string{"", "   "} {
		resp, body = a.do(t, http.MethodPost, "/tamu", a.gro, fiber.Map{"nama": blank})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "nama %q", blank)
		assert.Contains(t, body["error"], "Nama (notblank)")
	}

	_, body = a.do(t, http.MethodGet, "/tamu/"+id, a.gro, nil)
	tamu := body["data"].(map[string]interface{})
	assert.Equal(t, "Budi", tamu["nama"])
	assert.Equal(t, "gro1", tamu["groInput"])
	assert.Nil(t, tamu["jamKeluar"])

	_, body = a.do(t, http.MethodGet, "/tamu/buku?kategori=VIP", a.gro, nil)
	assert.Equal(t, 1, total(t, body))
	_, body = a.do(t, http.MethodGet, "/tamu/history", a.gro, nil)
	assert.Equal(t, 0, total(t, body))

	resp, _ = a.do(t, http.MethodPatch, "/tamu/"+id+"/status", a.gro, fiber.Map{"statustamu": "Bogus"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPatch, "/tamu/"+id+"/checkout", a.gro, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body = a.do(t, http.MethodGet, "/tamu/buku", a.gro, nil)
	assert.Equal(t, 0, total(t, body))
	_, body = a.do(t, http.MethodGet, "/tamu/history", a.gro, nil)
	assert.Equal(t, 1, total(t, body))
	_, body = a.do(t, http.MethodGet, "/tamu/"+id, a.gro, nil)
	assert.NotNil(t, body["data"].(map[string]interface{})["jamKeluar"])

	resp, _ = a.do(t, http.MethodPatch, "/tamu/"+id+"/status", a.gro, fiber.Map{"statustamu": "Open"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, body = a.do(t, http.MethodGet, "/tamu/buku", a.gro, nil)
	assert.Equal(t, 1, total(t, body))

	resp, _ = a.do(t, http.MethodPut, "/tamu/"+id, a.gro, fiber.Map{"nama": "Budi Santoso", "statusTamu": "Entry"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := a.doArray(t, "/tamu", a.gro)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi Santoso", rows[0]["nama"])

	resp, _ = a.do(t, http.MethodGet, "/tamu/TM000000000000000", a.gro, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(t, http.MethodDelete, "/tamu/"+id, a.gro, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = a.do(t, http.MethodDelete, "/tamu/"+id, a.gro, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Empty(t, a.doArray(t, "/tamu", a.gro))
}

func TestTamuLaporan(t *testing.T) {
	a := newTestApp(t)
	resp, _ := a.do(t, http.MethodPost, "/tamu", a.gro, fiber.Map{"nama": "Sari"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	today := time.Now().Format("2006-01-02")
	req := httptest.NewRequest(http.MethodGet, "/tamu/laporan?from="+today+"&to="+today, nil)
	req.Header.Set("Authorization", "Bearer "+a.gro)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))

	resp, _ = a.do(t, http.MethodGet, "/tamu/laporan?from="+today, a.gro, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotesAndStatus(t *testing.T) {
	a := newTestApp(t)

	resp, _ := a.do(t, http.MethodPost, "/api/notes", a.gro, fiber.Map{"pengirim": "Andi"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := a.do(t, http.MethodPost, "/api/notes", a.gro, fiber.Map{"pengirim": "Andi", "penerima": "Sari", "tanggal": "2026-10-16", "pesan": "<b>Paket</b> di lobby"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	note := body["data"].(map[string]interface{})
	assert.Equal(t, "Paket di lobby", note["pesan"])
	assert.Equal(t, "Open", note["status"])
	assert.Equal(t, "gro1", note["groInput"])
	id := int(note["idnotes"].(float64))

	resp, _ = a.do(t, http.MethodPatch, "/api/notes/"+strconv.Itoa(id)+"/status", a.gro, fiber.Map{"status": "Closed"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPatch, "/api/notes/999/status", a.gro, fiber.Map{"status": "Closed"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, body = a.do(t, http.MethodGet, "/api/notes?status=Closed&from=2026-10-16&to=2026-10-16", a.gro, nil)
	assert.Equal(t, 1, total(t, body))
	_, body = a.do(t, http.MethodGet, "/api/notes?status=Open", a.gro, nil)
	assert.Equal(t, 0, total(t, body))
}

func TestPhoneLogListing(t *testing.T) {
	a := newTestApp(t)
	for _, nama := range []string{"Budi", "Sari", "Budiman"} {
		resp, _ := a.do(t, http.MethodPost, "/api/logs/telepon", a.gro, fiber.Map{"namaPenelpon": nama, "arah": "Masuk", "tanggal": "2026-10-16"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	_, body := a.do(t, http.MethodGet, "/api/logs/telepon?search=budi&pageSize=1&page=5", a.gro, nil)
	assert.Equal(t, 2, total(t, body))
	p := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, p["page"])
	assert.EqualValues(t, 2, p["totalPages"])
	assert.Len(t, body["data"], 1)

	resp, _ := a.do(t, http.MethodPost, "/api/logs/telepon", a.gro, fiber.Map{"namaPenelpon": "X", "arah": "Samping"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPhonebookGuestRekey(t *testing.T) {
	a := newTestApp(t)
	resp, _ := a.do(t, http.MethodPost, "/api/phonebook/guests", a.gro, fiber.Map{"noTelp": "0811", "nama": "Andi"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPost, "/api/phonebook/guests", a.gro, fiber.Map{"noTelp": "0813", "nama": "Sari"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPut, "/api/phonebook/guests/0811", a.gro, fiber.Map{"noTelp": "0813", "nama": "Andi"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPut, "/api/phonebook/guests/0811", a.gro, fiber.Map{"noTelp": "0812", "nama": "Andi W"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/api/phonebook/guests/0811", a.gro, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	_, body := a.do(t, http.MethodGet, "/api/phonebook/guests/0812", a.gro, nil)
	assert.Equal(t, "Andi W", body["data"].(map[string]interface{})["nama"])
}

func TestJabatanDeleteNeedsAdmin(t *testing.T) {
	a := newTestApp(t)
	resp, body := a.do(t, http.MethodPost, "/api/jabatan", a.gro, fiber.Map{"nama": "Kepala Divisi SDM", "gedung": "A"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := strconv.Itoa(int(body["data"].(map[string]interface{})["idjabatan"].(float64)))

	resp, _ = a.do(t, http.MethodDelete, "/api/jabatan/"+id, a.gro, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp, _ = a.do(t, http.MethodDelete, "/api/jabatan/"+id, a.admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = a.do(t, http.MethodGet, "/api/jabatan/abc", a.gro, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAktivitasPengguna(t *testing.T) {
	a := newTestApp(t)
	a.do(t, http.MethodPost, "/api/phonebook/internal", a.gro, fiber.Map{"nama": "Resepsionis", "ext": "100"})
	a.do(t, http.MethodPost, "/api/notes", a.gro, fiber.Map{"pengirim": "Andi", "pesan": "Tes"})
	a.do(t, http.MethodGet, "/api/notes", a.gro, nil)

	resp, _ := a.do(t, http.MethodGet, "/api/aktivitas-pengguna", a.gro, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body := a.do(t, http.MethodGet, "/api/aktivitas-pengguna?search=notes&pageSize=10", a.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, total(t, body))
	row := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "gro1", row["username"])
	assert.Equal(t, "POST /api/notes", row["aksi"])
	assert.EqualValues(t, fiber.StatusCreated, row["statusCode"])
}

func TestDashboard(t *testing.T) {
	a := newTestApp(t)
	a.do(t, http.MethodPost, "/tamu", a.gro, fiber.Map{"nama": "Budi", "kategori": "VIP", "statusTamu": "Open"})

	resp, body := a.do(t, http.MethodGet, "/api/dashboard/stats", a.gro, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["hariIni"])
	assert.EqualValues(t, 1, stats["aktif"])

	_, body = a.do(t, http.MethodGet, "/api/dashboard/trends?days=3", a.gro, nil)
	assert.Len(t, body["data"].(map[string]interface{})["harian"], 3)
}
