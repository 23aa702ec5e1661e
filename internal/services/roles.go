package services

import (
	"errors"
	"fmt"

	"kabarindo/internal/apperr"
	"kabarindo/internal/db"
	"kabarindo/internal/models"
	"kabarindo/internal/utils"

	"gorm.io/gorm"
)

// RoleService mengubah role user dengan konfirmasi ulang password aktor
// dan mencatat setiap perubahan ke user_logs. Kolom users.role tidak
// boleh ditulis dari tempat lain.
type RoleService struct{}

func NewRoleService() *RoleService {
	return &RoleService{}
}

// ChangeRole menjalankan alur: validasi → verifikasi aktor → resolve
// target → mutasi + audit dalam satu transaksi.
//
// Verifikasi password wajib walaupun aktor mengubah role user lain,
// bukan hanya miliknya sendiri. Tidak ada short-circuit saat role baru
// sama dengan role lama: baris audit "from ADMIN to ADMIN" memang
// diharapkan.
func (s *RoleService) ChangeRole(actorID, targetUserID uint, newRole models.Role, password string) (*models.User, error) {
	if newRole == "" || password == "" {
		return nil, apperr.Validation("Role dan password diperlukan")
	}
	if !newRole.Valid() {
		return nil, apperr.Validation("Role tidak valid")
	}

	// Aktor seharusnya sudah terautentikasi; cek ini defensif.
	var actor models.User
	if err := db.DB.First(&actor, actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication("User tidak ditemukan")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, actor.Password) {
		return nil, apperr.Authentication("Password salah")
	}

	var target models.User
	if err := db.DB.First(&target, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User target tidak ditemukan")
		}
		return nil, err
	}

	oldRole := target.Role

	// Mutasi role dan baris audit adalah satu unit: perubahan role
	// tanpa jejak audit tidak boleh terjadi.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", target.ID).
			Update("role", newRole).Error; err != nil {
			return err
		}

		entry := models.UserLog{
			ActorID:      actor.ID,
			TargetUserID: target.ID,
			Action:       models.UserLogActionChangeRole,
			Detail:       fmt.Sprintf("from %s to %s", oldRole, newRole),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	target.Role = newRole
	return &target, nil
}

// ListUserLogs mengembalikan catatan audit, terbaru lebih dulu,
// dengan paginasi sederhana.
func (s *RoleService) ListUserLogs(page, limit int) ([]models.UserLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	var logs []models.UserLog
	err := db.DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
