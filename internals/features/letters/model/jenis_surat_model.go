package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JenisSurat taksonomi klasifikasi surat. Tidak boleh dihapus selama masih
// direferensikan surat masuk/keluar (FK RESTRICT).
type JenisSurat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nama      string    `json:"nama" gorm:"type:varchar(100);uniqueIndex;not null"`
	Deskripsi string    `json:"deskripsi" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (JenisSurat) TableName() string { return "jenis_surat" }

func (j *JenisSurat) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
