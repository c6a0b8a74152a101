package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	letterModel "earsip_backend/internals/features/letters/model"
)

func TestListJenisSuratUrutNama(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)
	seedJenis(t, db, "Undangan")
	seedJenis(t, db, "Edaran")
	seedJenis(t, db, "Pemberitahuan")

	resp, env := doJSON(t, app, http.MethodGet, "/api/jenis-surat/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data []letterModel.JenisSurat
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 3)
	assert.Equal(t, "Edaran", data[0].Nama)
	assert.Equal(t, "Pemberitahuan", data[1].Nama)
	assert.Equal(t, "Undangan", data[2].Nama)
}

func TestCreateJenisSurat(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)

	resp, env := doJSON(t, app, http.MethodPost, "/api/jenis-surat/",
		map[string]string{"nama": "Undangan", "deskripsi": "Surat undangan kegiatan"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data letterModel.JenisSurat
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEqual(t, uuid.Nil, data.ID)
	assert.Equal(t, "Undangan", data.Nama)
}

func TestCreateJenisSuratNamaDuplikat(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)
	seedJenis(t, db, "Undangan")

	resp, env := doJSON(t, app, http.MethodPost, "/api/jenis-surat/",
		map[string]string{"nama": "Undangan", "deskripsi": "duplikat"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nama jenis surat sudah ada.", env.Message)
}

func TestCreateJenisSuratNamaKosong(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/jenis-surat/",
		map[string]string{"nama": "", "deskripsi": "tanpa nama"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateJenisSurat(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)
	jenis := seedJenis(t, db, "Undangan")
	seedJenis(t, db, "Edaran")

	resp, env := doJSON(t, app, http.MethodPut, "/api/jenis-surat/"+jenis.ID.String(),
		map[string]string{"nama": "Undangan Resmi", "deskripsi": "revisi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data letterModel.JenisSurat
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Undangan Resmi", data.Nama)

	// rename ke nama yang sudah dipakai jenis lain
	resp, env = doJSON(t, app, http.MethodPut, "/api/jenis-surat/"+jenis.ID.String(),
		map[string]string{"nama": "Edaran", "deskripsi": "tabrakan"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nama jenis surat sudah ada.", env.Message)
}

func TestUpdateJenisSuratTidakDitemukan(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/jenis-surat/"+uuid.NewString(),
		map[string]string{"nama": "Undangan", "deskripsi": ""})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteJenisSuratMasihDipakai(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)
	jenis := seedJenis(t, db, "Undangan")

	resp, env := doMultipart(t, app, http.MethodPost, "/api/surat-masuk/",
		masukFields(jenis.ID.String(), "AG-001", "2026-08-10"), "a.pdf")
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	resp, env = doJSON(t, app, http.MethodDelete, "/api/jenis-surat/"+jenis.ID.String(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Jenis surat tidak bisa dihapus karena masih digunakan oleh surat masuk/keluar.", env.Message)

	var n int64
	require.NoError(t, db.Model(&letterModel.JenisSurat{}).Count(&n).Error)
	assert.EqualValues(t, 1, n, "jenis tidak ikut terhapus")
}

func TestDeleteJenisSuratTidakDipakai(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)
	jenis := seedJenis(t, db, "Undangan")

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/jenis-surat/"+jenis.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n int64
	require.NoError(t, db.Model(&letterModel.JenisSurat{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteJenisSuratTidakDitemukan(t *testing.T) {
	db := setupDB(t)
	app := setupApp(t, db)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/jenis-surat/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
