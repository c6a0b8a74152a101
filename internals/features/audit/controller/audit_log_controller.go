package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"earsip_backend/internals/features/audit/model"
	helper "earsip_backend/internals/helpers"
)

// Batasi 200 log terbaru agar tampilan tidak berat.
const maxLogEntries = 200

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// List mengembalikan 200 entry terbaru, terbaru di atas. Read-only.
func (ctl *AuditLogController) List(c *fiber.Ctx) error {
	var logs []model.AuditLog
	if err := ctl.DB.Order("timestamp DESC").Limit(maxLogEntries).Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data log.")
	}
	return helper.Success(c, "Data log berhasil diambil", logs)
}
