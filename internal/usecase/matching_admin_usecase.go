package usecase

import (
	"errors"

	"github.com/talenthive/talenthive-backend/internal/dto"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/repository"
	"gorm.io/gorm"
)

// ErrQueueEntryNotFound is returned when no queue entry exists for the
// requested id.
var ErrQueueEntryNotFound = errors.New("queue entry not found")

// MatchingAdminUsecase covers the admin surface of the matching subsystem:
// the settings singleton and manual rerun enqueues.
type MatchingAdminUsecase struct {
	settingsRepo repository.MatchSettingsRepositoryInterface
	queueRepo    repository.MatchQueueRepositoryInterface
}

func NewMatchingAdminUsecase(settingsRepo repository.MatchSettingsRepositoryInterface, queueRepo repository.MatchQueueRepositoryInterface) *MatchingAdminUsecase {
	return &MatchingAdminUsecase{settingsRepo: settingsRepo, queueRepo: queueRepo}
}

func (uc *MatchingAdminUsecase) GetSettings() (*model.MatchSettings, error) {
	return uc.settingsRepo.Get()
}

// UpdateSettings overwrites the five weights and the auto-matching toggle on
// the singleton row and returns the new state.
func (uc *MatchingAdminUsecase) UpdateSettings(input dto.UpdateMatchSettingsInput) (*model.MatchSettings, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	settings.SkillsWeight = input.SkillsWeight
	settings.ExperienceWeight = input.ExperienceWeight
	settings.CertificationWeight = input.CertificationWeight
	settings.AssessmentWeight = input.AssessmentWeight
	settings.InternshipPriority = input.InternshipPriority
	settings.AutoMatchingEnabled = input.AutoMatchingEnabled

	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ToggleAutoMatching flips only the auto_matching_enabled flag.
func (uc *MatchingAdminUsecase) ToggleAutoMatching(enabled bool) (*model.MatchSettings, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	settings.AutoMatchingEnabled = enabled

	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// RerunMatching enqueues a manual match-rerun request for the given job and
// returns the new queue entry id. The worker picks it up on a later tick.
func (uc *MatchingAdminUsecase) RerunMatching(jobID uint) (uint, error) {
	return uc.queueRepo.Enqueue(jobID, model.TriggerManual)
}

// GetQueueEntry returns one queue entry so admins can follow a rerun through
// its status lifecycle.
func (uc *MatchingAdminUsecase) GetQueueEntry(id uint) (*model.MatchQueueEntry, error) {
	entry, err := uc.queueRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQueueEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}
