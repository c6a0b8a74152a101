package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuratMasuk surat yang diterima sekolah; file sumber wajib diupload.
type SuratMasuk struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	NomorAgenda  string      `json:"nomor_agenda" gorm:"type:varchar(100);uniqueIndex;not null"`
	NomorSurat   string      `json:"nomor_surat" gorm:"type:varchar(100);not null"`
	TanggalMasuk time.Time   `json:"tanggal_masuk" gorm:"index;not null"`
	TanggalSurat time.Time   `json:"tanggal_surat" gorm:"not null"`
	Pengirim     string      `json:"pengirim" gorm:"type:varchar(200);not null"`
	Perihal      string      `json:"perihal" gorm:"type:varchar(255);not null"`
	JenisSuratID uuid.UUID   `json:"jenis_surat_id" gorm:"type:uuid;not null;index"`
	JenisSurat   *JenisSurat `json:"jenis_surat,omitempty" gorm:"foreignKey:JenisSuratID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	FileURL      string      `json:"file_url" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (SuratMasuk) TableName() string { return "surat_masuk" }

func (s *SuratMasuk) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
