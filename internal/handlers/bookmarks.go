package handlers

import (
	"net/http"

	"kabarindo/internal/db"
	"kabarindo/internal/middleware"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct{}

func NewBookmarkHandler() *BookmarkHandler {
	return &BookmarkHandler{}
}

// Toggle - simpan/batal simpan artikel.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	user := middleware.CurrentUser(c)

	article, ok := findArticleBySlug(c)
	if !ok {
		return
	}

	var existing models.Bookmark
	if err := db.DB.Where("user_id = ? AND article_id = ?", user.ID, article.ID).First(&existing).Error; err == nil {
		db.DB.Delete(&existing)
		c.JSON(http.StatusOK, gin.H{"isBookmarked": false, "message": "Bookmark dibatalkan"})
		return
	}

	bookmark := models.Bookmark{UserID: user.ID, ArticleID: article.ID}
	if err := db.DB.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memproses bookmark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isBookmarked": true, "message": "Artikel dibookmark"})
}

// List - artikel yang disimpan user, dengan pagination.
func (h *BookmarkHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var total int64
	db.DB.Model(&models.Bookmark{}).Where("user_id = ?", user.ID).Count(&total)

	var bookmarks []models.Bookmark
	err := db.DB.Preload("Article").Preload("Article.Author").Preload("Article.Category").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookmarks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil bookmark"})
		return
	}

	articles := make([]models.Article, 0, len(bookmarks))
	for _, b := range bookmarks {
		articles = append(articles, b.Article)
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": articles, "total": total})
}
