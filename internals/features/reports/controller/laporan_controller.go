package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	letterModel "earsip_backend/internals/features/letters/model"
	"earsip_backend/internals/features/reports/dto"
	helper "earsip_backend/internals/helpers"
)

// Tipe laporan yang dikenal.
const (
	ReportSuratMasuk  = "surat_masuk"
	ReportSuratKeluar = "surat_keluar"
)

type LaporanController struct {
	DB *gorm.DB
}

func NewLaporanController(db *gorm.DB) *LaporanController {
	return &LaporanController{DB: db}
}

// Generate mengembalikan seluruh surat dalam rentang tanggal inklusif
// (dibatasi per hari), join jenis surat, urut tanggal naik.
func (ctl *LaporanController) Generate(c *fiber.Ctx) error {
	var req dto.LaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if req.ReportType == "" || req.StartDate == "" || req.EndDate == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Tipe laporan dan rentang tanggal wajib diisi.")
	}

	start, err1 := time.Parse("2006-01-02", req.StartDate)
	end, err2 := time.Parse("2006-01-02", req.EndDate)
	if err1 != nil || err2 != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	endInclusive := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	switch req.ReportType {
	case ReportSuratMasuk:
		var data []letterModel.SuratMasuk
		if err := ctl.DB.Preload("JenisSurat").
			Where("tanggal_masuk >= ? AND tanggal_masuk <= ?", start, endInclusive).
			Order("tanggal_masuk ASC").
			Find(&data).Error; err != nil {
			log.Printf("[ERROR] laporan surat masuk: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan.")
		}
		return helper.Success(c, "Laporan surat masuk berhasil dibuat", data)

	case ReportSuratKeluar:
		var data []letterModel.SuratKeluar
		if err := ctl.DB.Preload("JenisSurat").
			Where("tanggal_keluar >= ? AND tanggal_keluar <= ?", start, endInclusive).
			Order("tanggal_keluar ASC").
			Find(&data).Error; err != nil {
			log.Printf("[ERROR] laporan surat keluar: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan.")
		}
		return helper.Success(c, "Laporan surat keluar berhasil dibuat", data)

	default:
		return helper.Error(c, fiber.StatusBadRequest, "Tipe laporan tidak valid.")
	}
}
