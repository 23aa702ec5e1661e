package models

import (
	"time"
)

// Role adalah level akses user. Kolom role hanya boleh ditulis
// lewat RoleService.ChangeRole.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleDeveloper Role = "DEVELOPER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleDeveloper:
		return true
	}
	return false
}

// IsStaff reports whether r grants admin-level access.
// ADMIN dan DEVELOPER keduanya dianggap staff.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleDeveloper
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Role      Role      `gorm:"size:20;default:'USER';not null" json:"role"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Avatar    string    `json:"avatar"`
	IsActive  bool      `gorm:"default:true;not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
