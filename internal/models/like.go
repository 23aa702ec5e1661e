package models

import (
	"time"
)

// Like - satu user maksimal satu like per artikel
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_article" json:"userId"`
	ArticleID uint      `gorm:"not null;index;uniqueIndex:idx_like_user_article" json:"articleId"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
