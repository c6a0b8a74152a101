package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"earsip_backend/internals/features/templates/dto"
	"earsip_backend/internals/features/templates/model"
	"earsip_backend/internals/features/templates/service"
	helper "earsip_backend/internals/helpers"
)

type TemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func placeholdersJSON(isi string) datatypes.JSON {
	raw, err := json.Marshal(service.ExtractPlaceholders(isi))
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func (ctl *TemplateController) List(c *fiber.Ctx) error {
	var templates []model.TemplateSurat
	if err := ctl.DB.Order("nama ASC").Find(&templates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil template.")
	}
	return helper.Success(c, "Data template berhasil diambil", templates)
}

// Create menyimpan template; daftar placeholder unik diekstrak dari isi.
func (ctl *TemplateController) Create(c *fiber.Ctx) error {
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tpl := model.TemplateSurat{
		Nama:         req.Nama,
		Subjek:       req.Subjek,
		Isi:          req.Isi,
		Placeholders: placeholdersJSON(req.Isi),
	}
	if err := ctl.DB.Create(&tpl).Error; err != nil {
		log.Printf("[ERROR] create template: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal membuat template.")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Template berhasil dibuat", tpl)
}

// Update menghitung ulang placeholder dari isi terbaru.
func (ctl *TemplateController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tpl model.TemplateSurat
	if err := ctl.DB.First(&tpl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Template tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil template.")
	}

	tpl.Nama = req.Nama
	tpl.Subjek = req.Subjek
	tpl.Isi = req.Isi
	tpl.Placeholders = placeholdersJSON(req.Isi)

	if err := ctl.DB.Save(&tpl).Error; err != nil {
		log.Printf("[ERROR] update template: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Gagal memperbarui template.")
	}
	return helper.Success(c, "Template berhasil diperbarui", tpl)
}

func (ctl *TemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	result := ctl.DB.Delete(&model.TemplateSurat{}, "id = ?", id)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus template.")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Template tidak ditemukan.")
	}
	return helper.Success(c, "Template berhasil dihapus.", nil)
}

// Render mensubstitusi placeholder template dengan nilai yang dikirim;
// placeholder tanpa nilai dibiarkan sebagai token aslinya.
func (ctl *TemplateController) Render(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var tpl model.TemplateSurat
	if err := ctl.DB.First(&tpl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Template tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil template.")
	}

	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}

	return helper.Success(c, "Template berhasil dirender", dto.RenderResponse{
		Subjek: tpl.Subjek,
		Isi:    service.RenderTemplate(tpl.Isi, req.Values),
	})
}
