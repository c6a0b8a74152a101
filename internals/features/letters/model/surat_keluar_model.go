package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuratKeluar surat yang dikirim sekolah; PDF-nya digenerate sistem dari Isi,
// tidak pernah diupload.
type SuratKeluar struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	NomorAgenda   string      `json:"nomor_agenda" gorm:"type:varchar(100);uniqueIndex;not null"`
	NomorSurat    string      `json:"nomor_surat" gorm:"type:varchar(100);not null"`
	TanggalKeluar time.Time   `json:"tanggal_keluar" gorm:"index;not null"`
	Tujuan        string      `json:"tujuan" gorm:"type:varchar(200);not null"`
	Perihal       string      `json:"perihal" gorm:"type:varchar(255);not null"`
	Isi           string      `json:"isi" gorm:"type:text;not null"`
	JenisSuratID  uuid.UUID   `json:"jenis_surat_id" gorm:"type:uuid;not null;index"`
	JenisSurat    *JenisSurat `json:"jenis_surat,omitempty" gorm:"foreignKey:JenisSuratID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	FileURL       string      `json:"file_url" gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (SuratKeluar) TableName() string { return "surat_keluar" }

func (s *SuratKeluar) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
