package model

import (
	"time"
)

// Listing visibility state that makes a job or internship eligible for
// candidate-facing matching.
const ListingStatusLive = "live"

// Job mirrors the jobs table. Requirements is a JSON-encoded array of
// requirement strings; malformed content degrades to an empty list at
// scoring time rather than failing the request.
type Job struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements string     `gorm:"type:jsonb" json:"requirements"`
	CompanyID    uint       `gorm:"index" json:"company_id"`
	JobType      string     `gorm:"type:varchar(20);default:'full-time'" json:"job_type"`
	Location     string     `gorm:"type:varchar(255)" json:"location"`
	Status       string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
