package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedImageExts membatasi tipe file yang boleh diunggah sebagai
// cover artikel.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxUploadSize = 5 << 20 // 5 MB

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		panic(fmt.Sprintf("failed to create upload dir %s: %v", uploadDir, err))
	}
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload - unggah gambar cover (staff). Nama file diganti UUID agar
// tidak bentrok dan tidak bisa ditebak.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File gambar diperlukan"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ukuran file maksimal 5 MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format file tidak didukung"})
		return
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": "/uploads/" + filename})
}
