package services

import (
	"testing"

	"kabarindo/internal/apperr"
	"kabarindo/internal/db"
	"kabarindo/internal/models"
)

func countUserLogs(t *testing.T) int64 {
	t.Helper()
	var count int64
	db.DB.Model(&models.UserLog{}).Count(&count)
	return count
}

func TestChangeRoleSuccess(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")
	target := createTestUser(t, "budi", models.RoleUser, "rahasia1")

	updated, err := s.ChangeRole(actor.ID, target.ID, models.RoleAdmin, "admin123")
	if err != nil {
		t.Fatalf("ChangeRole failed: %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Errorf("returned role = %s, want ADMIN", updated.Role)
	}

	// Role tersimpan di database
	var fresh models.User
	if err := db.DB.First(&fresh, target.ID).Error; err != nil {
		t.Fatalf("failed to reload target: %v", err)
	}
	if fresh.Role != models.RoleAdmin {
		t.Errorf("persisted role = %s, want ADMIN", fresh.Role)
	}

	// Tepat satu baris audit dengan detail yang benar
	var logs []models.UserLog
	if err := db.DB.Find(&logs).Error; err != nil {
		t.Fatalf("failed to load user logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("user log count = %d, want 1", len(logs))
	}
	entry := logs[0]
	if entry.ActorID != actor.ID || entry.TargetUserID != target.ID {
		t.Errorf("log actor/target = %d/%d, want %d/%d", entry.ActorID, entry.TargetUserID, actor.ID, target.ID)
	}
	if entry.Action != models.UserLogActionChangeRole {
		t.Errorf("log action = %q, want %q", entry.Action, models.UserLogActionChangeRole)
	}
	if entry.Detail != "from USER to ADMIN" {
		t.Errorf("log detail = %q, want %q", entry.Detail, "from USER to ADMIN")
	}
}

func TestChangeRoleWrongPassword(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")
	target := createTestUser(t, "budi", models.RoleUser, "rahasia1")

	_, err := s.ChangeRole(actor.ID, target.ID, models.RoleAdmin, "salah")
	if !apperr.IsKind(err, apperr.KindAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if err.Error() != "Password salah" {
		t.Errorf("error message = %q, want %q", err.Error(), "Password salah")
	}

	// Tidak ada mutasi dan tidak ada baris audit
	var fresh models.User
	db.DB.First(&fresh, target.ID)
	if fresh.Role != models.RoleUser {
		t.Errorf("role changed to %s despite wrong password", fresh.Role)
	}
	if n := countUserLogs(t); n != 0 {
		t.Errorf("user log count = %d, want 0", n)
	}
}

func TestChangeRoleTargetNotFound(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")

	_, err := s.ChangeRole(actor.ID, 9999, models.RoleAdmin, "admin123")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if n := countUserLogs(t); n != 0 {
		t.Errorf("user log count = %d, want 0", n)
	}
}

func TestChangeRoleActorNotFound(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	target := createTestUser(t, "budi", models.RoleUser, "rahasia1")

	_, err := s.ChangeRole(9999, target.ID, models.RoleAdmin, "admin123")
	if !apperr.IsKind(err, apperr.KindAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if err.Error() != "User tidak ditemukan" {
		t.Errorf("error message = %q, want %q", err.Error(), "User tidak ditemukan")
	}
}

func TestChangeRoleValidation(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")
	target := createTestUser(t, "budi", models.RoleUser, "rahasia1")

	cases := []struct {
		name     string
		role     models.Role
		password string
	}{
		{"role kosong", "", "admin123"},
		{"password kosong", models.RoleAdmin, ""},
		{"role tidak dikenal", "SUPERUSER", "admin123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.ChangeRole(actor.ID, target.ID, tc.role, tc.password)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if n := countUserLogs(t); n != 0 {
		t.Errorf("user log count = %d, want 0", n)
	}
}

func TestChangeRoleSameRoleStillAudited(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")
	target := createTestUser(t, "ani", models.RoleAdmin, "rahasia1")

	// Tidak ada short-circuit: role sama tetap menghasilkan baris audit
	if _, err := s.ChangeRole(actor.ID, target.ID, models.RoleAdmin, "admin123"); err != nil {
		t.Fatalf("ChangeRole failed: %v", err)
	}

	var logs []models.UserLog
	db.DB.Find(&logs)
	if len(logs) != 1 {
		t.Fatalf("user log count = %d, want 1", len(logs))
	}
	if logs[0].Detail != "from ADMIN to ADMIN" {
		t.Errorf("log detail = %q, want %q", logs[0].Detail, "from ADMIN to ADMIN")
	}
}

func TestListUserLogsNewestFirst(t *testing.T) {
	setupTestDB(t)
	s := NewRoleService()

	actor := createTestUser(t, "dev", models.RoleDeveloper, "admin123")
	target := createTestUser(t, "budi", models.RoleUser, "rahasia1")

	if _, err := s.ChangeRole(actor.ID, target.ID, models.RoleAdmin, "admin123"); err != nil {
		t.Fatalf("first ChangeRole failed: %v", err)
	}
	if _, err := s.ChangeRole(actor.ID, target.ID, models.RoleDeveloper, "admin123"); err != nil {
		t.Fatalf("second ChangeRole failed: %v", err)
	}

	logs, err := s.ListUserLogs(1, 50)
	if err != nil {
		t.Fatalf("ListUserLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("user log count = %d, want 2", len(logs))
	}
	if logs[0].ID < logs[1].ID {
		t.Errorf("logs not in reverse-chronological order: ids %d, %d", logs[0].ID, logs[1].ID)
	}
	if logs[0].Detail != "from ADMIN to DEVELOPER" {
		t.Errorf("newest log detail = %q, want %q", logs[0].Detail, "from ADMIN to DEVELOPER")
	}

	// Paginasi: satu per halaman
	pageOne, err := s.ListUserLogs(1, 1)
	if err != nil {
		t.Fatalf("ListUserLogs page 1 failed: %v", err)
	}
	pageTwo, err := s.ListUserLogs(2, 1)
	if err != nil {
		t.Fatalf("ListUserLogs page 2 failed: %v", err)
	}
	if len(pageOne) != 1 || len(pageTwo) != 1 {
		t.Fatalf("page sizes = %d, %d, want 1, 1", len(pageOne), len(pageTwo))
	}
	if pageOne[0].ID == pageTwo[0].ID {
		t.Error("pagination returned the same row twice")
	}
}
