package model

import (
	"time"
)

// MatchSettings is a singleton row (id = 1). The weights are stored and
// returned to admins but the scorer does not apply them yet; they are
// reserved for a future weighted scoring rollout.
type MatchSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	SkillsWeight        float64   `gorm:"type:decimal(5,2);not null;default:1.00" json:"skills_weight"`
	ExperienceWeight    float64   `gorm:"type:decimal(5,2);not null;default:1.00" json:"experience_weight"`
	CertificationWeight float64   `gorm:"type:decimal(5,2);not null;default:1.00" json:"certification_weight"`
	AssessmentWeight    float64   `gorm:"type:decimal(5,2);not null;default:1.00" json:"assessment_weight"`
	InternshipPriority  float64   `gorm:"type:decimal(5,2);not null;default:1.00" json:"internship_priority"`
	AutoMatchingEnabled bool      `gorm:"not null;default:false" json:"auto_matching_enabled"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (MatchSettings) TableName() string {
	return "match_settings"
}
