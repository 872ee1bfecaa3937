package repository

import (
	"github.com/talenthive/talenthive-backend/internal/model"
	"gorm.io/gorm"
)

type MatchSettingsRepositoryInterface interface {
	Get() (*model.MatchSettings, error)
	Save(settings *model.MatchSettings) error
	EnsureDefaults() (*model.MatchSettings, error)
}

// MatchSettingsRepository manages the singleton match_settings row.
type MatchSettingsRepository struct {
	db *gorm.DB
}

func NewMatchSettingsRepository(db *gorm.DB) *MatchSettingsRepository {
	return &MatchSettingsRepository{db}
}

// EnsureDefaults guarantees the singleton row exists before first use. All
// weights default to 1.00 and auto matching starts disabled. Safe to call on
// every startup.
func (r *MatchSettingsRepository) EnsureDefaults() (*model.MatchSettings, error) {
	settings := model.MatchSettings{
		ID:                  1,
		SkillsWeight:        1.0,
		ExperienceWeight:    1.0,
		CertificationWeight: 1.0,
		AssessmentWeight:    1.0,
		InternshipPriority:  1.0,
		AutoMatchingEnabled: false,
	}
	if err := r.db.Where("id = ?", 1).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MatchSettingsRepository) Get() (*model.MatchSettings, error) {
	var settings model.MatchSettings
	err := r.db.First(&settings, "id = ?", 1).Error
	return &settings, err
}

// Save persists the singleton row in place.
func (r *MatchSettingsRepository) Save(settings *model.MatchSettings) error {
	return r.db.Save(settings).Error
}
