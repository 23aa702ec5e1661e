package handlers

import (
	"net/http"

	"kabarindo/internal/db"
	"kabarindo/internal/middleware"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile - profil lengkap user yang sedang login.
func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var fresh models.User
	if err := db.DB.First(&fresh, user.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, fresh)
}

type updateProfileRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Avatar          string `json:"avatar"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile - ubah profil sendiri. Ganti password mensyaratkan
// password lama ikut dikirim dan cocok.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	if req.FullName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nama dan email diperlukan"})
		return
	}

	if req.Email != user.Email {
		var existing models.User
		if err := db.DB.Where("email = ? AND id != ?", req.Email, user.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email sudah digunakan"})
			return
		}
	}

	updates := map[string]interface{}{
		"full_name": req.FullName,
		"email":     req.Email,
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password lama diperlukan untuk mengubah password"})
			return
		}
		if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password lama tidak benar"})
			return
		}
		if len(req.NewPassword) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password minimal 6 karakter"})
			return
		}

		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memperbarui profil"})
			return
		}
		updates["password"] = hash
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memperbarui profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil berhasil diperbarui"})
}
