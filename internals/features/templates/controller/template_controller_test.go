package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "earsip_backend/internals/databases"
	templateController "earsip_backend/internals/features/templates/controller"
	"earsip_backend/internals/features/templates/dto"
	templateModel "earsip_backend/internals/features/templates/model"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTemplateApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	ctl := templateController.NewTemplateController(db)
	app := fiber.New()
	grp := app.Group("/api/templates")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/render", ctl.Render)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
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

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

const isiUndangan = "Kepada Yth. {{nama}}, mohon hadir pada {{tanggal}} di {{tempat}}. Hormat kami, {{nama}}."

func createTemplate(t *testing.T, app *fiber.App) templateModel.TemplateSurat {
	t.Helper()
	resp, env := do(t, app, http.MethodPost, "/api/templates/", dto.TemplateRequest{
		Nama:   "Undangan Rapat",
		Subjek: "Undangan Rapat Wali Murid",
		Isi:    isiUndangan,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	var tpl templateModel.TemplateSurat
	require.NoError(t, json.Unmarshal(env.Data, &tpl))
	return tpl
}

func TestCreateTemplateEkstrakPlaceholder(t *testing.T) {
	app, _ := setupTemplateApp(t)
	tpl := createTemplate(t, app)

	var placeholders []string
	require.NoError(t, json.Unmarshal(tpl.Placeholders, &placeholders))
	// unik, urut kemunculan pertama
	assert.Equal(t, []string{"nama", "tanggal", "tempat"}, placeholders)
}

func TestUpdateTemplateHitungUlangPlaceholder(t *testing.T) {
	app, _ := setupTemplateApp(t)
	tpl := createTemplate(t, app)

	resp, env := do(t, app, http.MethodPut, "/api/templates/"+tpl.ID.String(), dto.TemplateRequest{
		Nama:   "Undangan Rapat",
		Subjek: "Undangan Rapat Wali Murid",
		Isi:    "Kepada {{nama_wali}}, acara pada {{tanggal}}.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated templateModel.TemplateSurat
	require.NoError(t, json.Unmarshal(env.Data, &updated))

	var placeholders []string
	require.NoError(t, json.Unmarshal(updated.Placeholders, &placeholders))
	assert.Equal(t, []string{"nama_wali", "tanggal"}, placeholders)
}

func TestUpdateTemplateTidakDitemukan(t *testing.T) {
	app, _ := setupTemplateApp(t)

	resp, _ := do(t, app, http.MethodPut, "/api/templates/"+uuid.NewString(), dto.TemplateRequest{
		Nama:   "X",
		Subjek: "Y",
		Isi:    "Z",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRenderTemplate(t *testing.T) {
	app, _ := setupTemplateApp(t)
	tpl := createTemplate(t, app)

	resp, env := do(t, app, http.MethodPost, "/api/templates/"+tpl.ID.String()+"/render", dto.RenderRequest{
		Values: map[string]string{
			"nama":    "Bapak Ahmad",
			"tanggal": "Senin, 1 September 2026",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rendered dto.RenderResponse
	require.NoError(t, json.Unmarshal(env.Data, &rendered))
	assert.Equal(t, "Undangan Rapat Wali Murid", rendered.Subjek)
	assert.Contains(t, rendered.Isi, "Bapak Ahmad")
	assert.Contains(t, rendered.Isi, "Senin, 1 September 2026")
	// placeholder tanpa nilai tetap utuh
	assert.Contains(t, rendered.Isi, "{{tempat}}")
	assert.NotContains(t, rendered.Isi, "{{nama}}")
}

func TestRenderTemplateTidakDitemukan(t *testing.T) {
	app, _ := setupTemplateApp(t)

	resp, env := do(t, app, http.MethodPost, "/api/templates/"+uuid.NewString()+"/render", dto.RenderRequest{
		Values: map[string]string{},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Template tidak ditemukan.", env.Message)
}

func TestDeleteTemplate(t *testing.T) {
	app, db := setupTemplateApp(t)
	tpl := createTemplate(t, app)

	resp, _ := do(t, app, http.MethodDelete, "/api/templates/"+tpl.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n int64
	require.NoError(t, db.Model(&templateModel.TemplateSurat{}).Count(&n).Error)
	assert.Zero(t, n)

	resp, _ = do(t, app, http.MethodDelete, "/api/templates/"+tpl.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTemplateUrutNama(t *testing.T) {
	app, db := setupTemplateApp(t)
	for _, nama := range []string{"Undangan", "Edaran", "Pemberitahuan"} {
		require.NoError(t, db.Create(&templateModel.TemplateSurat{
			Nama:         nama,
			Subjek:       nama,
			Isi:          "isi " + nama,
			Placeholders: []byte("[]"),
		}).Error)
	}

	resp, env := do(t, app, http.MethodGet, "/api/templates/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data []templateModel.TemplateSurat
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 3)
	assert.Equal(t, "Edaran", data[0].Nama)
	assert.Equal(t, "Undangan", data[2].Nama)
}
