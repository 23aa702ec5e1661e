package services

import (
	"testing"

	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB mengarahkan db.DB ke sqlite in-memory untuk satu test.
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
}

// createTestUser menyimpan user dengan password yang sudah di-hash.
func createTestUser(t *testing.T, username string, role models.Role, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		FullName: username,
		Role:     role,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

// createTestArticle menyimpan artikel terbit milik author.
func createTestArticle(t *testing.T, authorID uint, slug string) *models.Article {
	t.Helper()

	category := models.Category{Name: "Test " + slug, Slug: "test-" + slug}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	article := models.Article{
		Title:       "Artikel " + slug,
		Slug:        slug,
		Excerpt:     "ringkasan",
		Content:     "isi artikel",
		AuthorID:    authorID,
		CategoryID:  category.ID,
		IsPublished: true,
	}
	if err := db.DB.Create(&article).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	return &article
}
