package repository

import (
	"github.com/talenthive/talenthive-backend/internal/model"
	"gorm.io/gorm"
)

type ListingRepositoryInterface interface {
	ListLiveJobs() ([]model.Job, error)
	ListLiveInternships() ([]model.Internship, error)
	FindJobByID(id uint) (*model.Job, error)
}

// ListingRepository reads the job and internship catalogs. Only live listings
// participate in matching; there is no pagination at this layer — the
// recommendation flow fetches the full live set and paginates in memory.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db}
}

func (r *ListingRepository) ListLiveJobs() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("status = ?", model.ListingStatusLive).Find(&jobs).Error
	return jobs, err
}

func (r *ListingRepository) ListLiveInternships() ([]model.Internship, error) {
	var internships []model.Internship
	err := r.db.Where("status = ?", model.ListingStatusLive).Find(&internships).Error
	return internships, err
}

func (r *ListingRepository) FindJobByID(id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ?", id).Error
	return &job, err
}
