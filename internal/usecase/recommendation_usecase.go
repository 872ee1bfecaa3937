package usecase

import (
	"errors"
	"sort"

	"github.com/talenthive/talenthive-backend/internal/dto"
	"github.com/talenthive/talenthive-backend/internal/matching"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/repository"
	"github.com/talenthive/talenthive-backend/internal/response"
	"gorm.io/gorm"
)

// ErrCandidateNotFound is returned when no candidate record exists for an
// authenticated user identity.
var ErrCandidateNotFound = errors.New("candidate not found for this user")

// Listing type filters accepted by the recommendations query.
const (
	TypeAll         = "all"
	TypeJobs        = "jobs"
	TypeInternships = "internships"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// RecommendationQuery carries the resolved request parameters. UserID is the
// external identity set by the upstream gateway.
type RecommendationQuery struct {
	UserID uint
	Type   string
	Page   int
	Limit  int
}

type RecommendationUsecase struct {
	candidateRepo repository.CandidateRepositoryInterface
	listingRepo   repository.ListingRepositoryInterface
}

func NewRecommendationUsecase(candidateRepo repository.CandidateRepositoryInterface, listingRepo repository.ListingRepositoryInterface) *RecommendationUsecase {
	return &RecommendationUsecase{candidateRepo: candidateRepo, listingRepo: listingRepo}
}

// Recommend resolves the candidate, scores the live catalogs the type filter
// asks for, and returns the sorted, paginated result. The whole path is
// read-only: nothing is cached or persisted.
func (uc *RecommendationUsecase) Recommend(q RecommendationQuery) (*response.Recommendation, error) {
	q = clampQuery(q)

	candidate, err := uc.candidateRepo.FindByUserID(q.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	resp := &response.Recommendation{
		Success: true,
		Meta: response.RecommendationMeta{
			CandidateID: candidate.ID,
			Page:        q.Page,
			Limit:       q.Limit,
			Type:        q.Type,
		},
		Jobs:        []dto.MatchedJob{},
		Internships: []dto.MatchedInternship{},
	}

	skills := matching.Normalize(matching.ParseSkills(candidate.Skills))
	if len(skills) == 0 {
		// No skills on record: empty result set, no catalog reads.
		return resp, nil
	}

	if q.Type != TypeInternships {
		jobs, err := uc.listingRepo.ListLiveJobs()
		if err != nil {
			return nil, err
		}
		matched := scoreJobs(skills, jobs)
		resp.Meta.TotalJobs = len(matched)
		resp.Jobs = paginate(matched, q.Page, q.Limit)
	}

	if q.Type != TypeJobs {
		internships, err := uc.listingRepo.ListLiveInternships()
		if err != nil {
			return nil, err
		}
		matched := scoreInternships(skills, internships)
		resp.Meta.TotalInternships = len(matched)
		resp.Internships = paginate(matched, q.Page, q.Limit)
	}

	return resp, nil
}

func clampQuery(q RecommendationQuery) RecommendationQuery {
	if q.Type == "" {
		q.Type = TypeAll
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// scoreJobs scores every live job, drops zero scores, and stable-sorts by
// score descending so ties keep the catalog fetch order.
func scoreJobs(skills []string, jobs []model.Job) []dto.MatchedJob {
	matched := []dto.MatchedJob{}
	for _, job := range jobs {
		score, matchedSkills := matching.ScoreJob(skills, job.Title, job.Description, job.Requirements)
		if score == 0 {
			continue
		}
		matched = append(matched, dto.MatchedJob{
			Job:           job,
			MatchScore:    score,
			MatchedSkills: matchedSkills,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})
	return matched
}

func scoreInternships(skills []string, internships []model.Internship) []dto.MatchedInternship {
	matched := []dto.MatchedInternship{}
	for _, internship := range internships {
		score, matchedSkills := matching.ScoreInternship(skills, internship.Title)
		if score == 0 {
			continue
		}
		matched = append(matched, dto.MatchedInternship{
			Internship:    internship,
			MatchScore:    score,
			MatchedSkills: matchedSkills,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})
	return matched
}

// paginate returns results[(page-1)*limit : page*limit], clamped to bounds.
func paginate[T any](results []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(results) {
		return []T{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
