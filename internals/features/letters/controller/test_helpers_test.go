package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"earsip_backend/internals/constants"
	database "earsip_backend/internals/databases"
	auditModel "earsip_backend/internals/features/audit/model"
	letterController "earsip_backend/internals/features/letters/controller"
	letterModel "earsip_backend/internals/features/letters/model"
	authMw "earsip_backend/internals/middlewares/auth"
)

// envelope bentuk response helper.Success/Error.
type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // satu koneksi supaya :memory: konsisten
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// setupApp membangun app test dengan identitas admin tersimpan di locals,
// meniru hasil AuthMiddleware.
func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	t.Setenv("UPLOAD_DIR", t.TempDir())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authMw.LocalUserID, "admin-1")
		c.Locals(authMw.LocalUserName, "Admin TU")
		c.Locals(authMw.LocalUserRole, constants.RoleAdminTU)
		return c.Next()
	})

	jenisCtl := letterController.NewJenisSuratController(db)
	masukCtl := letterController.NewSuratMasukController(db)

	jenis := app.Group("/api/jenis-surat")
	jenis.Get("/", jenisCtl.List)
	jenis.Post("/", jenisCtl.Create)
	jenis.Put("/:id", jenisCtl.Update)
	jenis.Delete("/:id", jenisCtl.Delete)

	masuk := app.Group("/api/surat-masuk")
	masuk.Post("/bulk-delete", masukCtl.BulkDelete)
	masuk.Get("/", masukCtl.List)
	masuk.Get("/:id", masukCtl.GetByID)
	masuk.Post("/", masukCtl.Create)
	masuk.Put("/:id", masukCtl.Update)
	masuk.Delete("/:id", masukCtl.Delete)

	return app
}

func seedJenis(t *testing.T, db *gorm.DB, nama string) letterModel.JenisSurat {
	t.Helper()
	jenis := letterModel.JenisSurat{Nama: nama, Deskripsi: "seed"}
	require.NoError(t, db.Create(&jenis).Error)
	return jenis
}

func auditCount(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&auditModel.AuditLog{}).Where("action = ?", action).Count(&n).Error)
	return n
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

// multipartSurat membangun body multipart surat masuk; fileName kosong
// berarti tanpa file.
func multipartSurat(t *testing.T, fields map[string]string, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 isi dummy"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func doMultipart(t *testing.T, app *fiber.App, method, path string, fields map[string]string, fileName string) (*http.Response, envelope) {
	t.Helper()
	buf, contentType := multipartSurat(t, fields, fileName)
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func masukFields(jenisID, agenda, tanggal string) map[string]string {
	return map[string]string{
		"nomor_agenda":   agenda,
		"nomor_surat":    "005/SMK/2026",
		"tanggal_masuk":  tanggal,
		"tanggal_surat":  tanggal,
		"pengirim":       "Dinas Pendidikan",
		"perihal":        "Undangan rapat",
		"jenis_surat_id": jenisID,
	}
}
