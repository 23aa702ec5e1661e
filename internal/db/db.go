package db

import (
	"log"
	"os"

	"kabarindo/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=kabarindo port=5432 sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial categories
	seedCategories()
}

// Migrate menjalankan AutoMigrate untuk semua model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.SiteSetting{},
		&models.UserLog{},
	)
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Name: "Nasional", Slug: "nasional", Description: "Berita nasional Indonesia", Color: "#DC2626"},
		{Name: "Ekonomi", Slug: "ekonomi", Description: "Berita ekonomi dan bisnis", Color: "#059669"},
		{Name: "Olahraga", Slug: "olahraga", Description: "Berita olahraga", Color: "#2563EB"},
		{Name: "Teknologi", Slug: "teknologi", Description: "Berita teknologi dan inovasi", Color: "#7C3AED"},
		{Name: "Budaya", Slug: "budaya", Description: "Berita budaya dan seni", Color: "#DC2626"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Default categories created")
}
