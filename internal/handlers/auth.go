package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kabarindo/internal/db"
	"kabarindo/internal/middleware"
	"kabarindo/internal/models"
	"kabarindo/internal/services"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	jwtSecret   string
	siteURL     string
	mailService *services.MailService
}

func NewAuthHandler(jwtSecret, siteURL string) *AuthHandler {
	return &AuthHandler{
		jwtSecret:   jwtSecret,
		siteURL:     siteURL,
		mailService: services.NewMailService(),
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userPayload adalah subset user yang dikirim bersama token.
func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
		"avatar":   user.Avatar,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	// Cek email/username yang sudah terpakai
	var existing models.User
	if err := db.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email atau username sudah digunakan"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan server"})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan server"})
		return
	}

	token, err := utils.GenerateToken(&user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan server"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registrasi berhasil",
		"token":   token,
		"user":    userPayload(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingMessage())
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	token, err := utils.GenerateToken(&user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"token":   token,
		"user":    userPayload(&user),
	})
}

// Me mengembalikan profil singkat user dari token.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword mengirim tautan reset berisi token opaque
// (base64 "userID:timestamp").
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email diperlukan"})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Email tidak ditemukan"})
		return
	}

	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%d:%d", user.ID, time.Now().UnixMilli())))
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", h.siteURL, token)
	h.mailService.SendPasswordResetEmail(user.Email, resetURL)

	c.JSON(http.StatusOK, gin.H{"message": "Link reset password telah dikirim ke email"})
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token dan password baru diperlukan"})
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token tidak valid"})
		return
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	userID := utils.StringToInt(parts[0])
	if userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token tidak valid"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal reset password"})
		return
	}
	if err := db.DB.Model(&user).Update("password", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil direset, silakan login dengan password baru."})
}
