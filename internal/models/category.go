package models

import (
	"time"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	Color       string    `gorm:"default:'#DC2626';not null" json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}
