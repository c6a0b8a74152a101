package constants

// Kode aksi audit log
const (
	ActionUserLogin = "USER_LOGIN"

	ActionCreateSuratMasuk     = "CREATE_SURAT_MASUK"
	ActionUpdateSuratMasuk     = "UPDATE_SURAT_MASUK"
	ActionDeleteSuratMasuk     = "DELETE_SURAT_MASUK"
	ActionBulkDeleteSuratMasuk = "BULK_DELETE_SURAT_MASUK"

	ActionGenerateSuratKeluar   = "GENERATE_SURAT_KELUAR"
	ActionUpdateSuratKeluar     = "UPDATE_SURAT_KELUAR"
	ActionDeleteSuratKeluar     = "DELETE_SURAT_KELUAR"
	ActionBulkDeleteSuratKeluar = "BULK_DELETE_SURAT_KELUAR"
)
