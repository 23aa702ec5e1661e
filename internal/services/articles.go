package services

import (
	"errors"
	"fmt"
	"time"

	"kabarindo/internal/apperr"
	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ArticleInput adalah field yang bisa ditulis staff saat membuat atau
// mengubah artikel.
type ArticleInput struct {
	Title       string
	Excerpt     string
	Content     string
	CoverImage  string
	CategoryID  uint
	IsPublished bool
}

// ArticleService - CRUD artikel untuk publik dan admin.
type ArticleService struct{}

func NewArticleService() *ArticleService {
	return &ArticleService{}
}

// List mengembalikan artikel beserta jumlah like/komentar/bookmark.
// publishedOnly=false dipakai halaman admin untuk melihat draft.
func (s *ArticleService) List(page, limit int, categorySlug, search string, publishedOnly bool) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	query := db.DB.Model(&models.Article{})

	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if categorySlug != "" {
		var category models.Category
		if err := db.DB.Where("slug = ?", categorySlug).First(&category).Error; err == nil {
			query = query.Where("category_id = ?", category.ID)
		}
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Preload("Author").Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	fillArticleCounts(articles)
	return articles, total, nil
}

// GetBySlug mengembalikan satu artikel untuk halaman detail, dengan
// konten markdown yang sudah dirender menjadi HTML tersanitasi.
func (s *ArticleService) GetBySlug(articleSlug string) (*models.Article, error) {
	var article models.Article
	err := db.DB.Preload("Author").Preload("Category").
		Where("slug = ?", articleSlug).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Artikel tidak ditemukan")
		}
		return nil, err
	}

	single := []models.Article{article}
	fillArticleCounts(single)
	article = single[0]

	article.Content = utils.RenderMarkdown(article.Content)
	return &article, nil
}

// Create menyimpan artikel baru dengan slug unik dari judul.
func (s *ArticleService) Create(authorID uint, input ArticleInput) (*models.Article, error) {
	if input.Title == "" || input.Excerpt == "" || input.Content == "" || input.CategoryID == 0 {
		return nil, apperr.Validation("Judul, ringkasan, konten, dan kategori diperlukan")
	}

	var category models.Category
	if err := db.DB.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Kategori tidak ditemukan")
		}
		return nil, err
	}

	article := models.Article{
		Title:       input.Title,
		Slug:        s.uniqueSlug(input.Title),
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		AuthorID:    authorID,
		CategoryID:  category.ID,
		IsPublished: input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := db.DB.Create(&article).Error; err != nil {
		return nil, err
	}

	invalidateArticleCaches()
	return &article, nil
}

// Update mengubah artikel yang sudah ada. Slug tidak berubah agar URL
// lama tetap hidup.
func (s *ArticleService) Update(id uint, input ArticleInput) (*models.Article, error) {
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Artikel tidak ditemukan")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Excerpt != "" {
		updates["excerpt"] = input.Excerpt
	}
	if input.Content != "" {
		updates["content"] = input.Content
	}
	if input.CoverImage != "" {
		updates["cover_image"] = input.CoverImage
	}
	if input.CategoryID != 0 {
		updates["category_id"] = input.CategoryID
	}
	if input.IsPublished != article.IsPublished {
		updates["is_published"] = input.IsPublished
		if input.IsPublished && article.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&article).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	invalidateArticleCaches()
	utils.GetCache().Delete(fmt.Sprintf("article:detail:%s", article.Slug))
	return &article, nil
}

// Delete menghapus artikel permanen beserta relasinya (cascade).
func (s *ArticleService) Delete(id uint) error {
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Artikel tidak ditemukan")
		}
		return err
	}

	if err := db.DB.Unscoped().Delete(&article).Error; err != nil {
		return err
	}

	invalidateArticleCaches()
	utils.GetCache().Delete(fmt.Sprintf("article:detail:%s", article.Slug))
	return nil
}

// uniqueSlug membuat slug dari judul, menambah suffix angka jika sudah
// terpakai.
func (s *ArticleService) uniqueSlug(title string) string {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		db.DB.Model(&models.Article{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// fillArticleCounts mengisi jumlah like/komentar/bookmark secara batch.
// Hanya komentar yang sudah disetujui yang dihitung.
func fillArticleCounts(articles []models.Article) {
	if len(articles) == 0 {
		return
	}

	articleIDs := make([]uint, len(articles))
	for i, a := range articles {
		articleIDs[i] = a.ID
	}

	type countResult struct {
		ArticleID uint
		Count     int
	}

	countByArticle := func(model interface{}, extraWhere string, args ...interface{}) map[uint]int {
		var results []countResult
		query := db.DB.Model(model).
			Select("article_id, COUNT(*) as count").
			Where("article_id IN ?", articleIDs)
		if extraWhere != "" {
			query = query.Where(extraWhere, args...)
		}
		query.Group("article_id").Scan(&results)

		counts := make(map[uint]int, len(results))
		for _, r := range results {
			counts[r.ArticleID] = r.Count
		}
		return counts
	}

	likeCounts := countByArticle(&models.Like{}, "")
	commentCounts := countByArticle(&models.Comment{}, "is_approved = ?", true)
	bookmarkCounts := countByArticle(&models.Bookmark{}, "")

	for i := range articles {
		articles[i].LikeCount = likeCounts[articles[i].ID]
		articles[i].CommentCount = commentCounts[articles[i].ID]
		articles[i].BookmarkCount = bookmarkCounts[articles[i].ID]
	}
}

// invalidateArticleCaches membuang halaman pertama daftar artikel dari
// cache setelah ada perubahan.
func invalidateArticleCaches() {
	utils.GetCache().Delete("articles:list:page:1")
}
