package repository

import (
	"github.com/talenthive/talenthive-backend/internal/model"
	"gorm.io/gorm"
)

type CandidateRepositoryInterface interface {
	FindByUserID(userID uint) (*model.Candidate, error)
}

// CandidateRepository resolves candidate records by their external user
// identity.
type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) FindByUserID(userID uint) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.First(&candidate, "user_id = ?", userID).Error
	return &candidate, err
}
