package controller

import (
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
	"earsip_backend/internals/helpers/storage"
)

type SuratMasukController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSuratMasukController(db *gorm.DB) *SuratMasukController {
	return &SuratMasukController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List dengan filter opsional rentang tanggal masuk (inklusif) AND jenis
// surat; hasil menyertakan jenis surat, urut tanggal terbaru dulu.
func (ctl *SuratMasukController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SuratMasuk{}).Preload("JenisSurat")

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && endDate != "" {
		start, err1 := parseDate(startDate)
		end, err2 := parseDate(endDate)
		if err1 != nil || err2 != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("tanggal_masuk >= ? AND tanggal_masuk <= ?", start, endOfDay(end))
	}
	if jenisID := c.Query("jenisSuratId"); jenisID != "" {
		q = q.Where("jenis_surat_id = ?", jenisID)
	}

	var data []model.SuratMasuk
	if err := q.Order("tanggal_masuk DESC").Find(&data).Error; err != nil {
		log.Printf("[ERROR] list surat masuk: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data surat masuk")
	}
	return helper.Success(c, "Data surat masuk berhasil diambil", data)
}

func (ctl *SuratMasukController) GetByID(c *fiber.Ctx) error {
	var data model.SuratMasuk
	if err := ctl.DB.Preload("JenisSurat").First(&data, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Surat tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data surat masuk berhasil diambil", data)
}

// Create wajib menyertakan file surat (multipart). File disimpan dulu; kalau
// insert database gagal, file yang terlanjur tersimpan ikut dihapus.
func (ctl *SuratMasukController) Create(c *fiber.Ctx) error {
	var req dto.SuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File surat wajib diupload.")
	}
	if err := storage.ValidateUpload(fileHeader); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, capitalize(err.Error()))
	}

	fileURL, err := storage.SaveUpload(c, fileHeader)
	if err != nil {
		log.Printf("[ERROR] simpan upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	tanggalMasuk, _ := parseDate(req.TanggalMasuk)
	tanggalSurat, _ := parseDate(req.TanggalSurat)

	data := model.SuratMasuk{
		NomorAgenda:  req.NomorAgenda,
		NomorSurat:   req.NomorSurat,
		TanggalMasuk: tanggalMasuk,
		TanggalSurat: tanggalSurat,
		Pengirim:     req.Pengirim,
		Perihal:      req.Perihal,
		JenisSuratID: uuid.MustParse(req.JenisSuratID),
		FileURL:      fileURL,
	}
	if err := ctl.DB.Create(&data).Error; err != nil {
		storage.DeleteFile(fileURL)
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nomor Agenda sudah ada.")
		}
		log.Printf("[ERROR] create surat masuk: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal membuat data")
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionCreateSuratMasuk,
		fmt.Sprintf("Membuat surat masuk baru dengan No. Agenda: %s", data.NomorAgenda))

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Surat masuk berhasil dicatat", data)
}

// Update opsional mengganti file; file lama dihapus hanya setelah file baru
// diterima dan tersimpan.
func (ctl *SuratMasukController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.SuratMasuk
	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req dto.SuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fileURL := existing.FileURL
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		if err := storage.ValidateUpload(fileHeader); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, capitalize(err.Error()))
		}
		newURL, err := storage.SaveUpload(c, fileHeader)
		if err != nil {
			log.Printf("[ERROR] simpan upload revisi: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
		}
		storage.DeleteFile(existing.FileURL)
		fileURL = newURL
	}

	tanggalMasuk, _ := parseDate(req.TanggalMasuk)
	tanggalSurat, _ := parseDate(req.TanggalSurat)

	existing.NomorAgenda = req.NomorAgenda
	existing.NomorSurat = req.NomorSurat
	existing.TanggalMasuk = tanggalMasuk
	existing.TanggalSurat = tanggalSurat
	existing.Pengirim = req.Pengirim
	existing.Perihal = req.Perihal
	existing.JenisSuratID = uuid.MustParse(req.JenisSuratID)
	existing.FileURL = fileURL

	if err := ctl.DB.Save(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nomor Agenda sudah ada.")
		}
		log.Printf("[ERROR] update surat masuk: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal update data")
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionUpdateSuratMasuk,
		fmt.Sprintf("Memperbarui surat masuk dengan ID: %s", id))

	return helper.Success(c, "Surat masuk berhasil diperbarui", existing)
}

// Delete menghapus record lalu file fisiknya (best-effort).
func (ctl *SuratMasukController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var surat model.SuratMasuk
	if err := ctl.DB.First(&surat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Surat tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Delete(&model.SuratMasuk{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete surat masuk: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	storage.DeleteFile(surat.FileURL)

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionDeleteSuratMasuk,
		fmt.Sprintf("Menghapus surat masuk %q (ID: %s)", surat.Perihal, surat.ID))

	return helper.Success(c, "Data surat dan file fisik berhasil dihapus", nil)
}

// BulkDelete menghapus banyak surat dalam satu operasi set di database,
// lalu menghapus tiap file terkait best-effort, dengan satu entry audit.
func (ctl *SuratMasukController) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	ids, ok := parseIDList(req.IDs)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "ID surat tidak valid atau kosong.")
	}

	var toDelete []model.SuratMasuk
	if err := ctl.DB.Select("id", "file_url").Where("id IN ?", ids).Find(&toDelete).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus surat secara massal.")
	}

	result := ctl.DB.Where("id IN ?", ids).Delete(&model.SuratMasuk{})
	if result.Error != nil {
		log.Printf("[ERROR] bulk delete surat masuk: %v", result.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus surat secara massal.")
	}
	for _, surat := range toDelete {
		storage.DeleteFile(surat.FileURL)
	}

	auditService.Record(ctl.DB, auditService.ActorFromLocals(c), constants.ActionBulkDeleteSuratMasuk,
		fmt.Sprintf("Menghapus %d surat masuk. IDs: %s", result.RowsAffected, strings.Join(req.IDs, ", ")))

	return helper.Success(c, fmt.Sprintf("%d surat dan file terkait berhasil dihapus.", result.RowsAffected), nil)
}
