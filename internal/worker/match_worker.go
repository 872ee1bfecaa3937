// Package worker drains the match queue at a fixed cadence, one entry per
// tick. The loop is deliberately slow: it is not meant to burn down a backlog
// faster than one item per interval.
package worker

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/repository"
	"github.com/talenthive/talenthive-backend/internal/service"
)

// MatchWorker polls the match queue and walks each claimed entry through
// processing to a terminal done or failed state. A failed entry records the
// error text, produces an admin notification, and is never retried; an entry
// whose fetch or claim errors stays queued and is retried on the next tick.
type MatchWorker struct {
	queueRepo        repository.MatchQueueRepositoryInterface
	listingRepo      repository.ListingRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	notifier         service.WebhookNotifierInterface
	cron             *cron.Cron
	spec             string
}

func New(
	queueRepo repository.MatchQueueRepositoryInterface,
	listingRepo repository.ListingRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	notifier service.WebhookNotifierInterface,
	intervalSeconds int,
) *MatchWorker {
	return &MatchWorker{
		queueRepo:        queueRepo,
		listingRepo:      listingRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		cron:             cron.New(),
		spec:             fmt.Sprintf("@every %ds", intervalSeconds),
	}
}

// Start registers the polling job and starts the scheduler.
func (w *MatchWorker) Start() error {
	_, err := w.cron.AddFunc(w.spec, w.RunOnce)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	w.cron.Start()
	log.Printf("[worker] Started — polling %s", w.spec)
	return nil
}

// Stop halts the scheduler. A tick already running finishes on its own.
func (w *MatchWorker) Stop() {
	w.cron.Stop()
	log.Println("[worker] Stopped")
}

// RunOnce is a single tick: fetch at most one queued entry, claim it, process
// it, and persist the terminal status. Errors before the claim leave the
// entry queued for the next tick; errors after the claim end in failed.
func (w *MatchWorker) RunOnce() {
	entry, err := w.queueRepo.NextQueued()
	if err != nil {
		log.Printf("[worker] Fetch error: %v", err)
		return
	}
	if entry == nil {
		return
	}

	claimed, err := w.queueRepo.Claim(entry.ID)
	if err != nil {
		log.Printf("[worker] Claim error for entry %d: %v", entry.ID, err)
		return
	}
	if !claimed {
		// Another worker instance won the row.
		return
	}
	entry.Status = model.QueueStatusProcessing

	if err := w.process(entry); err != nil {
		log.Printf("[worker] Entry %d failed: %v", entry.ID, err)
		w.finish(entry, model.QueueStatusFailed, err.Error())
		w.recordFailure(entry, err)
		return
	}
	w.finish(entry, model.QueueStatusDone, "")
}

// process performs the rematch action for one claimed entry. It resolves the
// referenced job so a rerun against a deleted or unknown job ends in failed;
// the recompute itself is a placeholder pending the per-candidate rematch
// rollout.
func (w *MatchWorker) process(entry *model.MatchQueueEntry) error {
	job, err := w.listingRepo.FindJobByID(entry.JobID)
	if err != nil {
		return fmt.Errorf("resolve job %d: %w", entry.JobID, err)
	}

	log.Printf("[worker] Running matching for job %d (%q)...", job.ID, job.Title)
	return nil
}

func (w *MatchWorker) finish(entry *model.MatchQueueEntry, status, errorText string) {
	if err := w.queueRepo.UpdateStatus(entry.ID, status, errorText); err != nil {
		log.Printf("[worker] Status update error for entry %d: %v", entry.ID, err)
		return
	}
	entry.Status = status
	if errorText != "" {
		entry.ErrorText = &errorText
	}
	if w.notifier != nil {
		w.notifier.NotifyQueueResult(entry)
	}
}

func (w *MatchWorker) recordFailure(entry *model.MatchQueueEntry, cause error) {
	notification := model.Notification{
		Audience:    "admin",
		Type:        model.NotificationMatchRerunFailed,
		Message:     fmt.Sprintf("Matching rerun for job %d failed: %v", entry.JobID, cause),
		ReferenceID: entry.ID,
	}
	if err := w.notificationRepo.Create(&notification); err != nil {
		log.Printf("[worker] Notification insert error for entry %d: %v", entry.ID, err)
	}
}
