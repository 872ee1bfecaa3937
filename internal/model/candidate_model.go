package model

import (
	"time"
)

// Candidate mirrors the candidates table. Skills is free-form text holding a
// JSON-encoded array of skill names; it is parsed defensively at scoring time
// and never stored as structured data.
type Candidate struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index" json:"user_id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone             string    `gorm:"type:varchar(20)" json:"phone"`
	City              string    `gorm:"type:varchar(100)" json:"city"`
	Country           string    `gorm:"type:varchar(100)" json:"country"`
	Status            string    `gorm:"type:varchar(30);default:'Pending Verification'" json:"status"`
	Skills            string    `gorm:"type:text" json:"skills"`
	ProfileCompletion int       `gorm:"default:0" json:"profile_completion"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
