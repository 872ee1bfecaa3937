package repository

import (
	"errors"

	"github.com/talenthive/talenthive-backend/internal/model"
	"gorm.io/gorm"
)

type MatchQueueRepositoryInterface interface {
	Enqueue(jobID uint, source string) (uint, error)
	UpdateStatus(id uint, status string, errorText string) error
	NextQueued() (*model.MatchQueueEntry, error)
	Claim(id uint) (bool, error)
	FindByID(id uint) (*model.MatchQueueEntry, error)
}

// MatchQueueRepository is the append-only log of match-rerun requests.
// Entries are inserted as queued and only ever have their status overwritten;
// nothing deletes them.
type MatchQueueRepository struct {
	db *gorm.DB
}

func NewMatchQueueRepository(db *gorm.DB) *MatchQueueRepository {
	return &MatchQueueRepository{db}
}

// Enqueue inserts a new queued entry and returns its id. There is no
// deduplication: enqueueing the same job twice creates two entries.
func (r *MatchQueueRepository) Enqueue(jobID uint, source string) (uint, error) {
	entry := model.MatchQueueEntry{
		JobID:         jobID,
		TriggerSource: source,
		Status:        model.QueueStatusQueued,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// UpdateStatus overwrites status and error text for one entry. It does not
// validate the transition; the worker is the sole caller and follows
// queued -> processing -> done|failed.
func (r *MatchQueueRepository) UpdateStatus(id uint, status string, errorText string) error {
	var errText any
	if errorText != "" {
		errText = errorText
	}
	return r.db.Model(&model.MatchQueueEntry{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "error_text": errText}).Error
}

// NextQueued returns the oldest queued entry, or nil when the backlog is
// empty.
func (r *MatchQueueRepository) NextQueued() (*model.MatchQueueEntry, error) {
	var entry model.MatchQueueEntry
	err := r.db.Where("status = ?", model.QueueStatusQueued).Order("id").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Claim flips one entry from queued to processing. The conditional update
// makes the claim safe against a second worker instance racing for the same
// row: only the caller that sees RowsAffected == 1 owns it.
func (r *MatchQueueRepository) Claim(id uint) (bool, error) {
	res := r.db.Model(&model.MatchQueueEntry{}).
		Where("id = ? AND status = ?", id, model.QueueStatusQueued).
		Update("status", model.QueueStatusProcessing)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *MatchQueueRepository) FindByID(id uint) (*model.MatchQueueEntry, error) {
	var entry model.MatchQueueEntry
	err := r.db.First(&entry, "id = ?", id).Error
	return &entry, err
}
