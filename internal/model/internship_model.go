package model

import (
	"time"
)

// Internship mirrors the internships table. Matching only inspects the
// title; the description is kept for the candidate-facing detail view.
type Internship struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	CompanyID      uint       `gorm:"index" json:"company_id"`
	DurationMonths int        `gorm:"default:3" json:"duration_months"`
	Location       string     `gorm:"type:varchar(255)" json:"location"`
	Status         string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Internship) TableName() string {
	return "internships"
}
