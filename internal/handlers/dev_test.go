package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	h := NewDevHandler(services.NewRoleService())
	r := gin.New()
	r.GET("/settings/:key", h.GetSetting)
	r.POST("/settings", h.SetSetting)
	r.DELETE("/settings/:key", h.DeleteSetting)
	return r
}

func doSettingsRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetSettingUpsert(t *testing.T) {
	r := setupSettingsRouter(t)

	// Create
	w := doSettingsRequest(r, http.MethodPost, "/settings",
		`{"key":"site_name","value":{"text":"Kabarindo"},"description":"nama situs"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var count int64
	db.DB.Model(&models.SiteSetting{}).Where("key = ?", "site_name").Count(&count)
	if count != 1 {
		t.Fatalf("setting count = %d, want 1", count)
	}

	// Update dengan key yang sama tidak membuat baris baru
	w = doSettingsRequest(r, http.MethodPost, "/settings",
		`{"key":"site_name","value":{"text":"Kabarindo Baru"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	db.DB.Model(&models.SiteSetting{}).Where("key = ?", "site_name").Count(&count)
	if count != 1 {
		t.Errorf("setting count after upsert = %d, want 1", count)
	}

	var setting models.SiteSetting
	if err := db.DB.Where("key = ?", "site_name").First(&setting).Error; err != nil {
		t.Fatalf("failed to reload setting: %v", err)
	}
	if !strings.Contains(string(setting.Value), "Kabarindo Baru") {
		t.Errorf("value not updated: %s", setting.Value)
	}
	// Description tidak ikut terhapus saat tidak dikirim
	if setting.Description != "nama situs" {
		t.Errorf("description = %q, want %q", setting.Description, "nama situs")
	}
}

func TestGetAndDeleteSetting(t *testing.T) {
	r := setupSettingsRouter(t)

	doSettingsRequest(r, http.MethodPost, "/settings",
		`{"key":"tagline","value":{"text":"Berita terpercaya"}}`)

	if w := doSettingsRequest(r, http.MethodGet, "/settings/tagline", ""); w.Code != http.StatusOK {
		t.Errorf("get: status = %d, want 200", w.Code)
	}

	if w := doSettingsRequest(r, http.MethodDelete, "/settings/tagline", ""); w.Code != http.StatusOK {
		t.Errorf("delete: status = %d, want 200", w.Code)
	}
	if w := doSettingsRequest(r, http.MethodDelete, "/settings/tagline", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", w.Code)
	}
	if w := doSettingsRequest(r, http.MethodGet, "/settings/tagline", ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", w.Code)
	}
}
