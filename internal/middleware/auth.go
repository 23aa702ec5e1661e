package middleware

import (
	"net/http"
	"strings"

	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired memverifikasi bearer token lalu memuat user ke context.
// User yang nonaktif diperlakukan sama dengan token tidak valid.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token akses diperlukan"})
			return
		}

		claims, err := utils.ParseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token tidak valid"})
			return
		}

		var user models.User
		if err := db.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid atau pengguna tidak aktif"})
			return
		}

		c.Set(CheckUserKey, &user)
		c.Next()
	}
}

// LoadUser memuat user ke context jika request membawa bearer token
// yang valid, tanpa menolak request anonim. Dipakai global supaya
// endpoint publik tetap tahu siapa pemanggilnya (mis. filter draft).
func LoadUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if claims, err := utils.ParseToken(strings.TrimSpace(parts[1]), secret); err == nil {
				var user models.User
				if err := db.DB.First(&user, claims.UserID).Error; err == nil && user.IsActive {
					c.Set(CheckUserKey, &user)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser mengambil user yang dimuat AuthRequired.
func CurrentUser(c *gin.Context) *models.User {
	u, exists := c.Get(CheckUserKey)
	if !exists {
		return nil
	}
	return u.(*models.User)
}

// requireRole menolak request jika role user tidak ada dalam daftar.
func requireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Autentikasi diperlukan"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Akses ditolak - peran tidak memadai"})
	}
}

// AdminRequired: ADMIN dan DEVELOPER keduanya level admin.
func AdminRequired() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, models.RoleDeveloper)
}

// DeveloperRequired: hanya DEVELOPER.
func DeveloperRequired() gin.HandlerFunc {
	return requireRole(models.RoleDeveloper)
}
