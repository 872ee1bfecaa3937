package model

import (
	"time"
)

// Queue entry statuses. Transitions only move forward:
// queued -> processing -> done | failed.
const (
	QueueStatusQueued     = "queued"
	QueueStatusProcessing = "processing"
	QueueStatusDone       = "done"
	QueueStatusFailed     = "failed"
)

// Trigger sources for a queue entry. No automatic enqueue path exists yet;
// "auto" is reserved for it.
const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
)

// MatchQueueEntry is one persisted request to rerun matching for a job.
// Entries are append-only: the worker flips their status but nothing ever
// deletes or requeues them.
type MatchQueueEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	JobID         uint      `gorm:"not null;index" json:"job_id"`
	TriggerSource string    `gorm:"type:varchar(10);not null;default:'manual'" json:"trigger_source"`
	Status        string    `gorm:"type:varchar(20);not null;default:'queued';index" json:"status"`
	ErrorText     *string   `gorm:"type:text" json:"error_text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MatchQueueEntry) TableName() string {
	return "match_queue"
}
