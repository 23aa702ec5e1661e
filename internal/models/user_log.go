package models

import (
	"time"
)

// Action tags yang tercatat di user_logs.
const (
	UserLogActionChangeRole = "change_role"
)

// UserLog adalah catatan audit aksi privileged terhadap user.
// Append-only: tidak pernah di-update atau dihapus.
type UserLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ActorID      uint      `gorm:"not null;index" json:"actorId"`
	Actor        User      `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	TargetUserID uint      `gorm:"not null;index" json:"targetUserId"`
	TargetUser   User      `gorm:"foreignKey:TargetUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Action       string    `gorm:"not null" json:"action"`
	Detail       string    `json:"detail"` // misal: "from USER to ADMIN"
	CreatedAt    time.Time `json:"createdAt"`
}
