package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog catatan aksi pengguna, append-only: aplikasi tidak pernah
// meng-update atau menghapus baris tabel ini.
type AuditLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp time.Time `json:"timestamp" gorm:"index;autoCreateTime"`
	UserID    string    `json:"user_id" gorm:"type:varchar(64);not null"`
	UserName  string    `json:"user_name" gorm:"type:varchar(100);not null"`
	UserRole  string    `json:"user_role" gorm:"type:varchar(50);not null"`
	Action    string    `json:"action" gorm:"type:varchar(64);not null;index"`
	Details   string    `json:"details" gorm:"type:text"`
}

func (AuditLog) TableName() string { return "audit_log" }

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
