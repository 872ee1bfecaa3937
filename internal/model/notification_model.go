package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by the matching subsystem.
const NotificationMatchRerunFailed = "match_rerun_failed"

// Notification is an admin-facing alert row. The matching worker writes one
// whenever a queued rerun ends in the failed state.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Audience    string    `gorm:"type:varchar(20);not null;default:'admin'" json:"audience"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	Message     string    `gorm:"type:text" json:"message"`
	ReferenceID uint      `json:"reference_id"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
