package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"earsip_backend/internals/constants"
	auditService "earsip_backend/internals/features/audit/service"
	"earsip_backend/internals/features/letters/dto"
	"earsip_backend/internals/features/letters/model"
	helper "earsip_backend/internals/helpers"
	"earsip_backend/internals/helpers/pdf"
	"earsip_backend/internals/helpers/storage"
)

type SuratKeluarController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	// Render bisa disubstitusi saat test; default headless Chrome.
	Render pdf.RenderFunc
}

func NewSuratKeluarController(db *gorm.DB) *SuratKeluarController {
	return &SuratKeluarController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Render:   pdf.GeneratePDFFromHTML,
	}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// List dengan filter opsional rentang tanggal keluar (inklusif) AND jenis
// surat; urut tanggal terbaru dulu.
func (ctl *SuratKeluarController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SuratKeluar{}).Preload("JenisSurat")

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && endDate != "" {
		start, err1 := parseDate(startDate)
		end, err2 := parseDate(endDate)
		if err1 != nil || err2 != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("tanggal_keluar >= ? AND tanggal_keluar <= ?", start, endOfDay(end))
	}
	if jenisID := c.Query("jenisSuratId"); jenisID != "" {
		q = q.Where("jenis_surat_id = ?", jenisID)
	}

	var data []model.SuratKeluar
	if err := q.Order("tanggal_keluar DESC").Find(&data).Error; err != nil {
		log.Printf("[ERROR] list surat keluar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data surat keluar")
	}
	return helper.Success(c, "Data surat keluar berhasil diambil", data)
}

func (ctl *SuratKeluarController) GetByID(c *fiber.Ctx) error {
	var data model.SuratKeluar
	if err := ctl.DB.Preload("JenisSurat").First(&data, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Surat tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data surat keluar berhasil diambil", data)
}

// Create merender PDF dari isi surat lebih dulu; record baru ditulis hanya
// setelah render berhasil, jadi tidak ada record tanpa file.
func (ctl *SuratKeluarController) Create(c *fiber.Ctx) error {
	var req dto.SuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fileURL, err := ctl.Render(reqCtx(c), req.Isi, "")
	if err != nil {
		log.Printf("[ERROR] generate PDF surat keluar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat surat keluar.")
	}

	tanggalKeluar, _ := parseDate(req.TanggalKeluar)
	data := model.SuratKeluar{
		NomorAgenda:   req.NomorAgenda,
		NomorSurat:    req.NomorSurat,
		TanggalKeluar: tanggalKeluar,
		Tujuan:        req.Tujuan,
		Perihal:       req.Perihal,
		Isi:           req.Isi,
		JenisSuratID:  uuid.MustParse(req.JenisSuratID),
		FileURL:       fileURL,
	}
	if err := ctl.DB.Create(&data).Error; err != nil {
		storage.DeleteFile(fileURL)
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nomor Agenda sudah ada.")
		}
		log.Printf("[ERROR] create surat keluar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat surat keluar.")
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionGenerateSuratKeluar,
		fmt.Sprintf("Membuat & Generate PDF Surat Keluar No. Agenda: %s", data.NomorAgenda))

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Surat keluar berhasil dibuat", data)
}

// Update selalu me-render ulang PDF dari isi terbaru (meski isi tidak
// berubah) dan menghapus PDF lama — perilaku sumber yang dipertahankan.
func (ctl *SuratKeluarController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.SuratKeluar
	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req dto.SuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	storage.DeleteFile(existing.FileURL)

	fileURL, err := ctl.Render(reqCtx(c), req.Isi, "")
	if err != nil {
		log.Printf("[ERROR] re-generate PDF surat keluar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update data")
	}

	tanggalKeluar, _ := parseDate(req.TanggalKeluar)
	existing.NomorAgenda = req.NomorAgenda
	existing.NomorSurat = req.NomorSurat
	existing.TanggalKeluar = tanggalKeluar
	existing.Tujuan = req.Tujuan
	existing.Perihal = req.Perihal
	existing.Isi = req.Isi
	existing.JenisSuratID = uuid.MustParse(req.JenisSuratID)
	existing.FileURL = fileURL

	if err := ctl.DB.Save(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nomor Agenda sudah ada.")
		}
		log.Printf("[ERROR] update surat keluar: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal update data")
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionUpdateSuratKeluar,
		fmt.Sprintf("Memperbarui & re-generate PDF surat keluar ID: %s", id))

	return helper.Success(c, "Surat keluar berhasil diperbarui", existing)
}

func (ctl *SuratKeluarController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var surat model.SuratKeluar
	if err := ctl.DB.First(&surat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Surat tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Delete(&model.SuratKeluar{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete surat keluar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	storage.DeleteFile(surat.FileURL)

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionDeleteSuratKeluar,
		fmt.Sprintf("Menghapus surat keluar %q (ID: %s)", surat.Perihal, surat.ID))

	return helper.Success(c, "Data surat dan file fisik berhasil dihapus", nil)
}

func (ctl *SuratKeluarController) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	ids, ok := parseIDList(req.IDs)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "ID surat tidak valid atau kosong.")
	}

	var toDelete []model.SuratKeluar
	if err := ctl.DB.Select("id", "file_url").Where("id IN ?", ids).Find(&toDelete).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus surat secara massal.")
	}

	result := ctl.DB.Where("id IN ?", ids).Delete(&model.SuratKeluar{})
	if result.Error != nil {
		log.Printf("[ERROR] bulk delete surat keluar: %v", result.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus surat secara massal.")
	}
	for _, surat := range toDelete {
		storage.DeleteFile(surat.FileURL)
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionBulkDeleteSuratKeluar,
		fmt.Sprintf("Menghapus %d surat keluar. IDs: %s", result.RowsAffected, strings.Join(req.IDs, ", ")))

	return helper.Success(c, fmt.Sprintf("%d surat dan file terkait berhasil dihapus.", result.RowsAffected), nil)
}
