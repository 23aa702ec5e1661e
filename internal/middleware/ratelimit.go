package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// RateLimit membatasi request per IP dengan token bucket. Dipakai di
// endpoint auth untuk meredam percobaan brute-force login.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	limiters, err := lru.New[string, *rate.Limiter](1000)
	if err != nil {
		log.Fatalf("Failed to create rate limiter cache: %v", err)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(r, burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Terlalu banyak percobaan login, coba lagi nanti"})
			return
		}

		c.Next()
	}
}
