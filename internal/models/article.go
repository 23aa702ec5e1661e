package models

import (
	"time"
)

type Article struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string     `gorm:"type:text;not null" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	CoverImage  string     `json:"coverImage"`
	AuthorID    uint       `gorm:"not null;index" json:"authorId"`
	Author      User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID  uint       `gorm:"not null;index" json:"categoryId"`
	Category    Category   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	IsPublished bool       `gorm:"default:false;not null" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Bukan kolom database, diisi saat query daftar artikel
	LikeCount     int `gorm:"-" json:"likeCount"`
	CommentCount  int `gorm:"-" json:"commentCount"`
	BookmarkCount int `gorm:"-" json:"bookmarkCount"`
}
