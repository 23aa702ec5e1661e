package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kabarindo/internal/middleware"
	"kabarindo/internal/services"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler() *ArticleHandler {
	return &ArticleHandler{
		articleService: services.NewArticleService(),
	}
}

// List - daftar artikel untuk publik dan admin.
// ?published=false menampilkan draft juga (dipakai halaman admin,
// tapi hanya efektif untuk user staff).
func (h *ArticleHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "10"))
	categorySlug := c.Query("category")
	search := c.Query("search")

	publishedOnly := true
	if c.Query("published") == "false" {
		user := middleware.CurrentUser(c)
		if user != nil && user.Role.IsStaff() {
			publishedOnly = false
		}
	}

	// Halaman pertama tanpa filter di-cache sebentar
	cacheable := publishedOnly && page == 1 && categorySlug == "" && search == "" && limit == 10
	cacheKey := "articles:list:page:1"
	if cacheable {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	articles, total, err := h.articleService.List(page, limit, categorySlug, search, publishedOnly)
	if err != nil {
		RespondError(c, err, "Gagal mengambil artikel")
		return
	}

	payload := gin.H{"articles": articles, "total": total}
	if cacheable {
		utils.GetCache().Set(cacheKey, payload, 1*time.Minute)
	}
	c.JSON(http.StatusOK, payload)
}

// Detail - satu artikel berdasarkan slug, konten sudah dirender.
func (h *ArticleHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := fmt.Sprintf("article:detail:%s", slug)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	article, err := h.articleService.GetBySlug(slug)
	if err != nil {
		RespondError(c, err, "Gagal mengambil artikel")
		return
	}

	utils.GetCache().Set(cacheKey, article, 5*time.Minute)
	c.JSON(http.StatusOK, article)
}

type articleRequest struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	CoverImage  string `json:"coverImage"`
	CategoryID  uint   `json:"categoryId"`
	IsPublished bool   `json:"isPublished"`
}

// Create - buat artikel baru (staff).
func (h *ArticleHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	article, err := h.articleService.Create(user.ID, services.ArticleInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		RespondError(c, err, "Gagal membuat artikel")
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update - ubah artikel (staff).
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID artikel tidak valid"})
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	article, err := h.articleService.Update(uint(id), services.ArticleInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		RespondError(c, err, "Gagal memperbarui artikel")
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete - hapus artikel permanen (staff).
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID artikel tidak valid"})
		return
	}

	if err := h.articleService.Delete(uint(id)); err != nil {
		RespondError(c, err, "Gagal menghapus artikel")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artikel berhasil dihapus"})
}
