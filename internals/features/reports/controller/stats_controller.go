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

type StatsController struct {
	DB *gorm.DB
	// Now bisa disubstitusi saat test biar window 6 bulan deterministik.
	Now func() time.Time
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db, Now: time.Now}
}

func (ctl *StatsController) countBetween(model interface{}, column string, start, end time.Time) (int64, error) {
	var n int64
	err := ctl.DB.Model(model).
		Where(column+" >= ? AND "+column+" <= ?", start, end).
		Count(&n).Error
	return n, err
}

// Dashboard menghitung total per arah, jumlah bulan berjalan, dan grafik
// 6 bulan terakhir (termasuk bulan ini), bulan tertua lebih dulu.
func (ctl *StatsController) Dashboard(c *fiber.Ctx) error {
	var stats dto.DashboardStats

	if err := ctl.DB.Model(&letterModel.SuratMasuk{}).Count(&stats.TotalSuratMasuk).Error; err != nil {
		return ctl.statsError(c, err)
	}
	if err := ctl.DB.Model(&letterModel.SuratKeluar{}).Count(&stats.TotalSuratKeluar).Error; err != nil {
		return ctl.statsError(c, err)
	}

	now := ctl.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())

	var err error
	if stats.SuratMasukBulanIni, err = ctl.countBetween(&letterModel.SuratMasuk{}, "tanggal_masuk", startOfMonth, endOfToday); err != nil {
		return ctl.statsError(c, err)
	}
	if stats.SuratKeluarBulanIni, err = ctl.countBetween(&letterModel.SuratKeluar{}, "tanggal_keluar", startOfMonth, endOfToday); err != nil {
		return ctl.statsError(c, err)
	}

	stats.MonthlyStats = make([]dto.MonthlyStat, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := startOfMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		masuk, err := ctl.countBetween(&letterModel.SuratMasuk{}, "tanggal_masuk", monthStart, monthEnd)
		if err != nil {
			return ctl.statsError(c, err)
		}
		keluar, err := ctl.countBetween(&letterModel.SuratKeluar{}, "tanggal_keluar", monthStart, monthEnd)
		if err != nil {
			return ctl.statsError(c, err)
		}

		stats.MonthlyStats = append(stats.MonthlyStats, dto.MonthlyStat{
			Name:        monthStart.Format("Jan"),
			SuratMasuk:  masuk,
			SuratKeluar: keluar,
		})
	}

	return helper.Success(c, "Statistik berhasil diambil", stats)
}

// RecentActivity 5 surat masuk + 5 surat keluar terbaru (proyeksi minimal).
func (ctl *StatsController) RecentActivity(c *fiber.Ctx) error {
	var masuk []dto.RecentMasuk
	if err := ctl.DB.Model(&letterModel.SuratMasuk{}).
		Select("id", "perihal", "pengirim", "created_at").
		Order("created_at DESC").Limit(5).
		Find(&masuk).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil aktivitas terbaru")
	}

	var keluar []dto.RecentKeluar
	if err := ctl.DB.Model(&letterModel.SuratKeluar{}).
		Select("id", "perihal", "tujuan", "created_at").
		Order("created_at DESC").Limit(5).
		Find(&keluar).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil aktivitas terbaru")
	}

	return helper.Success(c, "Aktivitas terbaru berhasil diambil", dto.RecentActivity{
		RecentMasuk:  masuk,
		RecentKeluar: keluar,
	})
}

func (ctl *StatsController) statsError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] dashboard stats: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
}
