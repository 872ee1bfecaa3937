package dto

import (
	"github.com/talenthive/talenthive-backend/internal/model"
)

// MatchedJob is a live job augmented with its match score and the distinct
// candidate skills that produced it. Computed fresh per request, never
// persisted.
type MatchedJob struct {
	model.Job
	MatchScore    int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
}

// MatchedInternship is the internship counterpart of MatchedJob.
type MatchedInternship struct {
	model.Internship
	MatchScore    int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
}

// UpdateMatchSettingsInput is the admin payload for PUT /matching-settings.
// All weights are overwritten in place on the singleton row.
type UpdateMatchSettingsInput struct {
	SkillsWeight        float64 `json:"skills_weight"`
	ExperienceWeight    float64 `json:"experience_weight"`
	CertificationWeight float64 `json:"certification_weight"`
	AssessmentWeight    float64 `json:"assessment_weight"`
	InternshipPriority  float64 `json:"internship_priority"`
	AutoMatchingEnabled bool    `json:"auto_matching_enabled"`
}

// ToggleAutoMatchingInput is the admin payload for PUT /toggle-auto-matching.
type ToggleAutoMatchingInput struct {
	Enabled bool `json:"enabled"`
}
