package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"kabarindo/internal/apperr"
	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"gorm.io/gorm"
)

// maxCommentLength adalah batas panjang komentar dalam karakter.
const maxCommentLength = 1000

// CommentService membuat dan memoderasi komentar.
type CommentService struct {
	policy *ModerationPolicy
}

func NewCommentService(policy *ModerationPolicy) *CommentService {
	return &CommentService{policy: policy}
}

// Create menyimpan komentar baru. is_approved awal diputuskan oleh
// ModerationPolicy dan tidak pernah dievaluasi ulang; persetujuan
// selanjutnya adalah aksi manual staff.
func (s *CommentService) Create(authorID, articleID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(utils.SanitizeComment(content))

	if content == "" {
		return nil, apperr.Validation("Komentar tidak boleh kosong")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, apperr.Validation("Komentar maksimal 1000 karakter")
	}

	var article models.Article
	if err := db.DB.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Artikel tidak ditemukan")
		}
		return nil, err
	}

	comment := models.Comment{
		Content:    content,
		AuthorID:   authorID,
		ArticleID:  article.ID,
		IsApproved: s.policy.Evaluate(content),
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByArticle mengembalikan komentar yang sudah disetujui untuk satu
// artikel, terbaru lebih dulu. Komentar pending tidak pernah tampil di
// halaman publik.
func (s *CommentService) ListByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("Author").
		Where("article_id = ? AND is_approved = ?", articleID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll mengembalikan semua komentar untuk halaman moderasi.
func (s *CommentService) ListAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListPending mengembalikan komentar yang menunggu moderasi.
func (s *CommentService) ListPending() ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("Author").
		Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Approve menyetujui komentar. Idempotent: menyetujui komentar yang
// sudah disetujui bukan error.
func (s *CommentService) Approve(id uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Komentar tidak ditemukan")
		}
		return err
	}

	return db.DB.Model(&comment).Update("is_approved", true).Error
}

// Delete menghapus komentar permanen. Menghapus komentar yang sudah
// tidak ada menghasilkan not-found.
func (s *CommentService) Delete(id uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Komentar tidak ditemukan")
		}
		return err
	}

	return db.DB.Delete(&comment).Error
}
