package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Warga represents the warga table (one row per registered resident)
type Warga struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nik         string    `json:"nik" gorm:"column:nik;size:16;uniqueIndex;not null"`
	Nama        string    `json:"nama" gorm:"column:nama;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"column:phone_number;size:15;uniqueIndex;not null"`
	Alamat      string    `json:"alamat" gorm:"column:alamat"`
	Rt          *int      `json:"rt" gorm:"column:rt"`
	Rw          *int      `json:"rw" gorm:"column:rw"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;<-:create"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Warga
func (Warga) TableName() string {
	return "warga"
}

// BeforeCreate assigns a fresh identifier when none is set
func (w *Warga) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
