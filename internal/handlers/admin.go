package handlers

import (
	"net/http"

	"kabarindo/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Statistics - ringkasan angka untuk dashboard admin.
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := services.GetStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil statistik"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
