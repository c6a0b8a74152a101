package dto

import "time"

// MonthlyStat satu titik grafik per bulan.
type MonthlyStat struct {
	Name        string `json:"name"`
	SuratMasuk  int64  `json:"surat_masuk"`
	SuratKeluar int64  `json:"surat_keluar"`
}

// DashboardStats ringkasan angka untuk dashboard.
type DashboardStats struct {
	TotalSuratMasuk     int64         `json:"total_surat_masuk"`
	TotalSuratKeluar    int64         `json:"total_surat_keluar"`
	SuratMasukBulanIni  int64         `json:"surat_masuk_bulan_ini"`
	SuratKeluarBulanIni int64         `json:"surat_keluar_bulan_ini"`
	MonthlyStats        []MonthlyStat `json:"monthly_stats"`
}

// RecentMasuk proyeksi minimal surat masuk untuk feed aktivitas.
type RecentMasuk struct {
	ID        string    `json:"id"`
	Perihal   string    `json:"perihal"`
	Pengirim  string    `json:"pengirim"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentKeluar proyeksi minimal surat keluar untuk feed aktivitas.
type RecentKeluar struct {
	ID        string    `json:"id"`
	Perihal   string    `json:"perihal"`
	Tujuan    string    `json:"tujuan"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentActivity gabungan feed dashboard.
type RecentActivity struct {
	RecentMasuk  []RecentMasuk  `json:"recent_masuk"`
	RecentKeluar []RecentKeluar `json:"recent_keluar"`
}

// LaporanRequest parameter laporan rentang tanggal.
type LaporanRequest struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}
