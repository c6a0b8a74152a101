package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"earsip_backend/internals/features/audit/model"
	authmw "earsip_backend/internals/middlewares/auth"
)

// Actor identitas pelaku aksi, diambil dari klaim token yang sudah
// divalidasi middleware.
type Actor struct {
	ID   string
	Name string
	Role string
}

// ActorFromLocals membaca identitas dari locals hasil AuthMiddleware.
func ActorFromLocals(c *fiber.Ctx) Actor {
	id, _ := c.Locals(authmw.LocalUserID).(string)
	name, _ := c.Locals(authmw.LocalUserName).(string)
	role, _ := c.Locals(authmw.LocalUserRole).(string)
	return Actor{ID: id, Name: name, Role: role}
}

// Record menulis satu entry audit log. Dipanggil tepat satu kali setelah
// setiap mutasi berhasil; kegagalan menulis log dicatat tapi tidak
// menggagalkan request yang mutasinya sudah ter-commit.
func Record(db *gorm.DB, actor Actor, action, details string) {
	entry := model.AuditLog{
		UserID:   actor.ID,
		UserName: actor.Name,
		UserRole: actor.Role,
		Action:   action,
		Details:  details,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Gagal mencatat audit log (%s): %v", action, err)
	}
}
