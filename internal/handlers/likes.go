package handlers

import (
	"net/http"

	"kabarindo/internal/db"
	"kabarindo/internal/middleware"
	"kabarindo/internal/models"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Toggle - like/batal like artikel.
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := middleware.CurrentUser(c)

	article, ok := findArticleBySlug(c)
	if !ok {
		return
	}

	var existing models.Like
	if err := db.DB.Where("user_id = ? AND article_id = ?", user.ID, article.ID).First(&existing).Error; err == nil {
		db.DB.Delete(&existing)
		c.JSON(http.StatusOK, gin.H{"isLiked": false, "message": "Like dibatalkan"})
		return
	}

	like := models.Like{UserID: user.ID, ArticleID: article.ID}
	if err := db.DB.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memproses like"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isLiked": true, "message": "Artikel disukai"})
}
