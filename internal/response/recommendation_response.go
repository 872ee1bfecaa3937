package response

import (
	"github.com/talenthive/talenthive-backend/internal/dto"
)

// RecommendationMeta describes the scored result set before pagination:
// totals count listings that survived zero-score filtering.
type RecommendationMeta struct {
	CandidateID      uint   `json:"candidate_id"`
	TotalJobs        int    `json:"total_jobs"`
	TotalInternships int    `json:"total_internships"`
	Page             int    `json:"page"`
	Limit            int    `json:"limit"`
	Type             string `json:"type"`
}

// Recommendation is the wire shape of GET /matching/recommendations. Jobs and
// Internships are the paginated slices for the requested page.
type Recommendation struct {
	Success     bool                    `json:"success"`
	Meta        RecommendationMeta      `json:"meta"`
	Jobs        []dto.MatchedJob        `json:"jobs"`
	Internships []dto.MatchedInternship `json:"internships"`
}
