package handlers

import (
	"net/http"

	"kabarindo/internal/db"
	"kabarindo/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List - semua kategori, urut nama.
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil kategori"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Create - buat kategori baru (staff).
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := db.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nama kategori sudah digunakan"})
		return
	}

	c.JSON(http.StatusCreated, category)
}
