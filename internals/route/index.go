// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"earsip_backend/internals/configs"
	"earsip_backend/internals/constants"
	auditController "earsip_backend/internals/features/audit/controller"
	letterController "earsip_backend/internals/features/letters/controller"
	reportController "earsip_backend/internals/features/reports/controller"
	templateController "earsip_backend/internals/features/templates/controller"
	userController "earsip_backend/internals/features/users/controller"
	"earsip_backend/internals/middlewares"
	authMw "earsip_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authCtl := userController.NewAuthController(db)
	jenisCtl := letterController.NewJenisSuratController(db)
	masukCtl := letterController.NewSuratMasukController(db)
	keluarCtl := letterController.NewSuratKeluarController(db)
	templateCtl := templateController.NewTemplateController(db)
	auditCtl := auditController.NewAuditLogController(db)
	statsCtl := reportController.NewStatsController(db)
	laporanCtl := reportController.NewLaporanController(db)

	adminOnly := authMw.OnlyRoles(constants.ErrOnlyAdminTU, constants.RoleAdminTU)

	// File surat (upload & hasil generate) dilayani statis
	app.Static("/uploads", configs.UploadDir())

	api := app.Group("/api")

	// ===================== AUTH (tanpa token) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtl.Login)

	// ===================== PROTECTED =====================
	protected := api.Group("", authMw.AuthMiddleware())

	// Jenis surat: baca untuk semua role, mutasi hanya Admin TU
	jenis := protected.Group("/jenis-surat")
	jenis.Get("/", jenisCtl.List)
	jenis.Post("/", adminOnly, jenisCtl.Create)
	jenis.Put("/:id", adminOnly, jenisCtl.Update)
	jenis.Delete("/:id", adminOnly, jenisCtl.Delete)

	// Surat masuk
	masuk := protected.Group("/surat-masuk")
	masuk.Post("/bulk-delete", adminOnly, masukCtl.BulkDelete)
	masuk.Get("/", masukCtl.List)
	masuk.Get("/:id", masukCtl.GetByID)
	masuk.Post("/", adminOnly, masukCtl.Create)
	masuk.Put("/:id", adminOnly, masukCtl.Update)
	masuk.Delete("/:id", adminOnly, masukCtl.Delete)

	// Surat keluar
	keluar := protected.Group("/surat-keluar")
	keluar.Post("/bulk-delete", adminOnly, keluarCtl.BulkDelete)
	keluar.Get("/", keluarCtl.List)
	keluar.Get("/:id", keluarCtl.GetByID)
	keluar.Post("/", adminOnly, keluarCtl.Create)
	keluar.Put("/:id", adminOnly, keluarCtl.Update)
	keluar.Delete("/:id", adminOnly, keluarCtl.Delete)

	// Statistik dashboard: terbuka untuk semua role terautentikasi
	stats := protected.Group("/stats")
	stats.Get("/dashboard", statsCtl.Dashboard)
	stats.Get("/recent-activity", statsCtl.RecentActivity)

	// Laporan hanya Admin TU
	protected.Post("/laporan", adminOnly, laporanCtl.Generate)

	// Audit log hanya Admin TU
	protected.Get("/audit-log", adminOnly, auditCtl.List)

	// Template surat hanya Admin TU
	templates := protected.Group("/templates", adminOnly)
	templates.Get("/", templateCtl.List)
	templates.Post("/", templateCtl.Create)
	templates.Put("/:id", templateCtl.Update)
	templates.Delete("/:id", templateCtl.Delete)
	templates.Post("/:id/render", templateCtl.Render)
}
