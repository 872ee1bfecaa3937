package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthive/talenthive-backend/internal/dto"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/usecase"
	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	settings model.MatchSettings
}

func (f *fakeSettingsRepo) Get() (*model.MatchSettings, error) {
	s := f.settings
	return &s, nil
}

func (f *fakeSettingsRepo) Save(settings *model.MatchSettings) error {
	f.settings = *settings
	return nil
}

func (f *fakeSettingsRepo) EnsureDefaults() (*model.MatchSettings, error) {
	s := f.settings
	return &s, nil
}

type fakeQueueRepo struct {
	entries map[uint]*model.MatchQueueEntry
	nextID  uint
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{entries: make(map[uint]*model.MatchQueueEntry)}
}

func (f *fakeQueueRepo) Enqueue(jobID uint, source string) (uint, error) {
	f.nextID++
	f.entries[f.nextID] = &model.MatchQueueEntry{
		ID:            f.nextID,
		JobID:         jobID,
		TriggerSource: source,
		Status:        model.QueueStatusQueued,
	}
	return f.nextID, nil
}

func (f *fakeQueueRepo) UpdateStatus(id uint, status string, errorText string) error {
	entry, ok := f.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	entry.Status = status
	if errorText == "" {
		entry.ErrorText = nil
	} else {
		entry.ErrorText = &errorText
	}
	return nil
}

func (f *fakeQueueRepo) NextQueued() (*model.MatchQueueEntry, error) {
	var oldest *model.MatchQueueEntry
	for _, entry := range f.entries {
		if entry.Status != model.QueueStatusQueued {
			continue
		}
		if oldest == nil || entry.ID < oldest.ID {
			oldest = entry
		}
	}
	if oldest == nil {
		return nil, nil
	}
	copied := *oldest
	return &copied, nil
}

func (f *fakeQueueRepo) Claim(id uint) (bool, error) {
	entry, ok := f.entries[id]
	if !ok || entry.Status != model.QueueStatusQueued {
		return false, nil
	}
	entry.Status = model.QueueStatusProcessing
	return true, nil
}

func (f *fakeQueueRepo) FindByID(id uint) (*model.MatchQueueEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return &model.MatchQueueEntry{}, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

func defaultSettings() model.MatchSettings {
	return model.MatchSettings{
		ID:                  1,
		SkillsWeight:        1.0,
		ExperienceWeight:    1.0,
		CertificationWeight: 1.0,
		AssessmentWeight:    1.0,
		InternshipPriority:  1.0,
		AutoMatchingEnabled: false,
	}
}

func TestUpdateSettings_OverwritesInPlace(t *testing.T) {
	settingsRepo := &fakeSettingsRepo{settings: defaultSettings()}
	uc := usecase.NewMatchingAdminUsecase(settingsRepo, newFakeQueueRepo())

	updated, err := uc.UpdateSettings(dto.UpdateMatchSettingsInput{
		SkillsWeight:        2.5,
		ExperienceWeight:    1.5,
		CertificationWeight: 0.5,
		AssessmentWeight:    1.0,
		InternshipPriority:  3.0,
		AutoMatchingEnabled: true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, 2.5, updated.SkillsWeight)
	assert.Equal(t, 3.0, updated.InternshipPriority)
	assert.True(t, updated.AutoMatchingEnabled)
	assert.Equal(t, *updated, settingsRepo.settings)
}

func TestToggleAutoMatching_FlipsOnlyTheFlag(t *testing.T) {
	settings := defaultSettings()
	settings.SkillsWeight = 2.0
	settingsRepo := &fakeSettingsRepo{settings: settings}
	uc := usecase.NewMatchingAdminUsecase(settingsRepo, newFakeQueueRepo())

	updated, err := uc.ToggleAutoMatching(true)
	require.NoError(t, err)

	assert.True(t, updated.AutoMatchingEnabled)
	assert.Equal(t, 2.0, updated.SkillsWeight)

	updated, err = uc.ToggleAutoMatching(false)
	require.NoError(t, err)
	assert.False(t, updated.AutoMatchingEnabled)
}

func TestRerunMatching_EnqueuesManualEntry(t *testing.T) {
	queueRepo := newFakeQueueRepo()
	uc := usecase.NewMatchingAdminUsecase(&fakeSettingsRepo{settings: defaultSettings()}, queueRepo)

	queueID, err := uc.RerunMatching(42)
	require.NoError(t, err)

	entry, err := queueRepo.FindByID(queueID)
	require.NoError(t, err)
	assert.Equal(t, uint(42), entry.JobID)
	assert.Equal(t, model.TriggerManual, entry.TriggerSource)
	assert.Equal(t, model.QueueStatusQueued, entry.Status)
	assert.Nil(t, entry.ErrorText)
}

func TestGetQueueEntry(t *testing.T) {
	queueRepo := newFakeQueueRepo()
	uc := usecase.NewMatchingAdminUsecase(&fakeSettingsRepo{settings: defaultSettings()}, queueRepo)

	id, err := uc.RerunMatching(42)
	require.NoError(t, err)

	entry, err := uc.GetQueueEntry(id)
	require.NoError(t, err)
	assert.Equal(t, uint(42), entry.JobID)
	assert.Equal(t, model.QueueStatusQueued, entry.Status)
}

func TestGetQueueEntry_NotFound(t *testing.T) {
	uc := usecase.NewMatchingAdminUsecase(&fakeSettingsRepo{settings: defaultSettings()}, newFakeQueueRepo())

	_, err := uc.GetQueueEntry(999)

	assert.ErrorIs(t, err, usecase.ErrQueueEntryNotFound)
}

func TestRerunMatching_NoDeduplication(t *testing.T) {
	queueRepo := newFakeQueueRepo()
	uc := usecase.NewMatchingAdminUsecase(&fakeSettingsRepo{settings: defaultSettings()}, queueRepo)

	first, err := uc.RerunMatching(42)
	require.NoError(t, err)
	second, err := uc.RerunMatching(42)
	require.NoError(t, err)

	// Two independent entries, monotonically increasing ids.
	assert.Less(t, first, second)
	assert.Len(t, queueRepo.entries, 2)
}
