package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting - konfigurasi runtime key/value, nilai disimpan sebagai JSON
type SiteSetting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Key         string         `gorm:"uniqueIndex;not null" json:"key"`
	Value       datatypes.JSON `gorm:"not null" json:"value"`
	Description string         `json:"description"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
