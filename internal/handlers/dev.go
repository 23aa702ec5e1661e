package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"kabarindo/internal/db"
	"kabarindo/internal/middleware"
	"kabarindo/internal/models"
	"kabarindo/internal/services"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DevHandler - endpoint khusus DEVELOPER: kelola user, role, site
// settings, dan baca audit log.
type DevHandler struct {
	roleService *services.RoleService
}

func NewDevHandler(roleService *services.RoleService) *DevHandler {
	return &DevHandler{roleService: roleService}
}

// ListUsers - semua user (tanpa hash password, json:"-").
func (h *DevHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data pengguna"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type changeRoleRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

// ChangeRole - ubah role user target. Aktor wajib mengetik ulang
// password-nya sendiri; setiap perubahan tercatat di user_logs.
func (h *DevHandler) ChangeRole(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID user tidak valid"})
		return
	}

	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role dan password diperlukan"})
		return
	}

	user, err := h.roleService.ChangeRole(actor.ID, uint(targetID), models.Role(req.Role), req.Password)
	if err != nil {
		RespondError(c, err, "Gagal mengubah role pengguna")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUserLogs - catatan audit perubahan role, terbaru lebih dulu.
func (h *DevHandler) ListUserLogs(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))

	logs, err := h.roleService.ListUserLogs(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil log user"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func settingCacheKey(key string) string {
	return "setting:" + key
}

// GetSetting - satu site setting berdasarkan key (publik).
func (h *DevHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	if cached := utils.GetCache().Get(settingCacheKey(key)); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var setting models.SiteSetting
	if err := db.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pengaturan tidak ditemukan"})
		return
	}

	utils.GetCache().Set(settingCacheKey(key), setting, 5*time.Minute)
	c.JSON(http.StatusOK, setting)
}

// ListSettings - semua site settings.
func (h *DevHandler) ListSettings(c *gin.Context) {
	var settings []models.SiteSetting
	if err := db.DB.Order("key ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil pengaturan"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type setSettingRequest struct {
	Key         string         `json:"key" binding:"required"`
	Value       datatypes.JSON `json:"value" binding:"required"`
	Description string         `json:"description"`
}

// SetSetting - upsert satu setting berdasarkan key.
func (h *DevHandler) SetSetting(c *gin.Context) {
	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	var setting models.SiteSetting
	err := db.DB.Where("key = ?", req.Key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.SiteSetting{
			Key:         req.Key,
			Value:       req.Value,
			Description: req.Description,
		}
		if err := db.DB.Create(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan pengaturan"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan pengaturan"})
		return
	default:
		updates := map[string]interface{}{"value": req.Value}
		if req.Description != "" {
			updates["description"] = req.Description
		}
		if err := db.DB.Model(&setting).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan pengaturan"})
			return
		}
	}

	utils.GetCache().Delete(settingCacheKey(req.Key))
	c.JSON(http.StatusOK, setting)
}

// DeleteSetting - hapus setting berdasarkan key.
func (h *DevHandler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	result := db.DB.Where("key = ?", key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus pengaturan"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pengaturan tidak ditemukan"})
		return
	}

	utils.GetCache().Delete(settingCacheKey(key))
	c.JSON(http.StatusOK, gin.H{"message": "Pengaturan berhasil dihapus"})
}
