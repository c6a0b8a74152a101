package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"earsip_backend/internals/features/letters/dto"
	"earsip_backend/internals/features/letters/model"
	helper "earsip_backend/internals/helpers"
)

type JenisSuratController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewJenisSuratController(db *gorm.DB) *JenisSuratController {
	return &JenisSuratController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List urut alfabetis by nama.
func (ctl *JenisSuratController) List(c *fiber.Ctx) error {
	var data []model.JenisSurat
	if err := ctl.DB.Order("nama ASC").Find(&data).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data jenis surat berhasil diambil", data)
}

func (ctl *JenisSuratController) Create(c *fiber.Ctx) error {
	var req dto.JenisSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	data := model.JenisSurat{Nama: req.Nama, Deskripsi: req.Deskripsi}
	if err := ctl.DB.Create(&data).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama jenis surat sudah ada.")
		}
		log.Printf("[ERROR] create jenis surat: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal membuat data")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jenis surat berhasil dibuat", data)
}

func (ctl *JenisSuratController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.JenisSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var data model.JenisSurat
	if err := ctl.DB.First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	data.Nama = req.Nama
	data.Deskripsi = req.Deskripsi
	if err := ctl.DB.Save(&data).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama jenis surat sudah ada.")
		}
		log.Printf("[ERROR] update jenis surat: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal update data")
	}
	return helper.Success(c, "Jenis surat berhasil diperbarui", data)
}

// Delete gagal 400 selama jenis masih direferensikan surat (FK 23503
// ditranslasi jadi pesan domain, bukan 500).
func (ctl *JenisSuratController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	result := ctl.DB.Delete(&model.JenisSurat{}, "id = ?", id)
	if result.Error != nil {
		if helper.IsForeignKeyViolation(result.Error) {
			return helper.Error(c, fiber.StatusBadRequest,
				"Jenis surat tidak bisa dihapus karena masih digunakan oleh surat masuk/keluar.")
		}
		log.Printf("[ERROR] delete jenis surat: %v", result.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.Success(c, "Data berhasil dihapus", nil)
}
