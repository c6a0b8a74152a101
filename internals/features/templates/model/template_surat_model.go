package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TemplateSurat template isi surat dengan token {{placeholder}}. Daftar nama
// placeholder unik dihitung ulang setiap kali template disimpan.
type TemplateSurat struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Nama         string         `json:"nama" gorm:"type:varchar(100);not null"`
	Subjek       string         `json:"subjek" gorm:"type:varchar(255)"`
	Isi          string         `json:"isi" gorm:"type:text;not null"`
	Placeholders datatypes.JSON `json:"placeholders" gorm:"not null;default:'[]'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (TemplateSurat) TableName() string { return "template_surat" }

func (t *TemplateSurat) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
