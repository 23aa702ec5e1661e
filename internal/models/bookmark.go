package models

import (
	"time"
)

// Bookmark - artikel yang disimpan user
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_bookmark_user_article" json:"userId"`
	ArticleID uint      `gorm:"not null;index;uniqueIndex:idx_bookmark_user_article" json:"articleId"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
