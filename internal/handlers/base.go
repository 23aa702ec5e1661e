package handlers

import (
	"errors"
	"net/http"

	"kabarindo/internal/apperr"
	"kabarindo/internal/db"
	"kabarindo/internal/models"

	"github.com/gin-gonic/gin"
)

// RespondError menerjemahkan error domain ke status HTTP:
// validation 400, authentication 401, not found 404, lainnya 500
// dengan pesan generik agar detail internal tidak bocor.
func RespondError(c *gin.Context, err error, fallback string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case apperr.KindValidation:
			status = http.StatusBadRequest
		case apperr.KindAuthentication:
			status = http.StatusUnauthorized
		case apperr.KindNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"message": appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

// bindingMessage mengembalikan pesan generik untuk request body yang
// gagal di-bind.
func bindingMessage() gin.H {
	return gin.H{"message": "Data yang dikirim tidak valid"}
}

// findArticleBySlug memuat artikel dari param :slug. Mengirim 404 dan
// mengembalikan false jika tidak ada.
func findArticleBySlug(c *gin.Context) (*models.Article, bool) {
	var article models.Article
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&article).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artikel tidak ditemukan"})
		return nil, false
	}
	return &article, true
}
