package dto

// SuratMasukRequest field form surat masuk (multipart; file diproses terpisah).
type SuratMasukRequest struct {
	NomorAgenda  string `json:"nomor_agenda" form:"nomor_agenda" validate:"required,max=100"`
	NomorSurat   string `json:"nomor_surat" form:"nomor_surat" validate:"required,max=100"`
	TanggalMasuk string `json:"tanggal_masuk" form:"tanggal_masuk" validate:"required,datetime=2006-01-02"`
	TanggalSurat string `json:"tanggal_surat" form:"tanggal_surat" validate:"required,datetime=2006-01-02"`
	Pengirim     string `json:"pengirim" form:"pengirim" validate:"required,max=200"`
	Perihal      string `json:"perihal" form:"perihal" validate:"required,max=255"`
	JenisSuratID string `json:"jenis_surat_id" form:"jenis_surat_id" validate:"required,uuid"`
}

// SuratKeluarRequest payload JSON surat keluar; Isi dirender jadi PDF oleh server.
type SuratKeluarRequest struct {
	NomorAgenda   string `json:"nomor_agenda" validate:"required,max=100"`
	NomorSurat    string `json:"nomor_surat" validate:"required,max=100"`
	TanggalKeluar string `json:"tanggal_keluar" validate:"required,datetime=2006-01-02"`
	Tujuan        string `json:"tujuan" validate:"required,max=200"`
	Perihal       string `json:"perihal" validate:"required,max=255"`
	Isi           string `json:"isi" validate:"required"`
	JenisSuratID  string `json:"jenis_surat_id" validate:"required,uuid"`
}

// BulkDeleteRequest daftar id surat yang dihapus sekaligus.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}
