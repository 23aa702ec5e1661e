package services

import (
	"kabarindo/internal/db"
	"kabarindo/internal/models"
)

// Statistics adalah ringkasan angka untuk dashboard admin.
type Statistics struct {
	TotalArticles  int64 `json:"totalArticles"`
	TotalUsers     int64 `json:"totalUsers"`
	TotalComments  int64 `json:"totalComments"`
	TotalLikes     int64 `json:"totalLikes"`
	TotalBookmarks int64 `json:"totalBookmarks"`
}

// GetStatistics menghitung total setiap entitas.
func GetStatistics() (*Statistics, error) {
	stats := &Statistics{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Article{}, &stats.TotalArticles},
		{&models.User{}, &stats.TotalUsers},
		{&models.Comment{}, &stats.TotalComments},
		{&models.Like{}, &stats.TotalLikes},
		{&models.Bookmark{}, &stats.TotalBookmarks},
	}

	for _, c := range counts {
		if err := db.DB.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
