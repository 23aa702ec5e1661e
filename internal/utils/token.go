package utils

import (
	"errors"
	"time"

	"kabarindo/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims adalah isi JWT yang diterbitkan saat login/register.
type TokenClaims struct {
	UserID   uint        `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken menerbitkan token HS256 dengan masa berlaku 7 hari.
func GenerateToken(user *models.User, secret string) (string, error) {
	if user == nil || user.ID == 0 {
		return "", errors.New("user diperlukan untuk membuat token")
	}

	now := time.Now()
	claims := TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken memverifikasi tanda tangan dan masa berlaku token.
func ParseToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
