package handlers

import (
	"net/http"
	"strconv"

	"kabarindo/internal/middleware"
	"kabarindo/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByArticle - komentar yang sudah disetujui untuk satu artikel.
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	article, ok := findArticleBySlug(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByArticle(article.ID)
	if err != nil {
		RespondError(c, err, "Gagal mengambil komentar")
		return
	}

	c.JSON(http.StatusOK, comments)
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create - kirim komentar baru. Moderasi otomatis menentukan apakah
// komentar langsung tampil atau masuk antrean moderasi.
func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	article, ok := findArticleBySlug(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Komentar tidak boleh kosong"})
		return
	}

	comment, err := h.commentService.Create(user.ID, article.ID, req.Content)
	if err != nil {
		RespondError(c, err, "Gagal mengirim komentar")
		return
	}

	message := "Komentar berhasil dikirim"
	if !comment.IsApproved {
		message = "Komentar berhasil dikirim dan menunggu moderasi"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "comment": comment})
}

// ListAll - semua komentar (staff).
func (h *CommentHandler) ListAll(c *gin.Context) {
	comments, err := h.commentService.ListAll()
	if err != nil {
		RespondError(c, err, "Gagal mengambil semua komentar")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListPending - komentar yang menunggu moderasi (staff).
func (h *CommentHandler) ListPending(c *gin.Context) {
	comments, err := h.commentService.ListPending()
	if err != nil {
		RespondError(c, err, "Gagal mengambil komentar yang menunggu moderasi")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Approve - setujui komentar (staff). Idempotent.
func (h *CommentHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID komentar tidak valid"})
		return
	}

	if err := h.commentService.Approve(uint(id)); err != nil {
		RespondError(c, err, "Gagal menyetujui komentar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Komentar berhasil disetujui"})
}

// Delete - tolak/hapus komentar permanen (staff).
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID komentar tidak valid"})
		return
	}

	if err := h.commentService.Delete(uint(id)); err != nil {
		RespondError(c, err, "Gagal menghapus komentar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Komentar berhasil dihapus"})
}
