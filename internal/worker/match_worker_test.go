package worker_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/worker"
	"gorm.io/gorm"
)

type fakeQueue struct {
	entries     map[uint]*model.MatchQueueEntry
	nextID      uint
	fetchErr    error
	claimDenied bool
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{entries: make(map[uint]*model.MatchQueueEntry)}
}

func (f *fakeQueue) Enqueue(jobID uint, source string) (uint, error) {
	f.nextID++
	f.entries[f.nextID] = &model.MatchQueueEntry{
		ID:            f.nextID,
		JobID:         jobID,
		TriggerSource: source,
		Status:        model.QueueStatusQueued,
	}
	return f.nextID, nil
}

func (f *fakeQueue) UpdateStatus(id uint, status string, errorText string) error {
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

func (f *fakeQueue) NextQueued() (*model.MatchQueueEntry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
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

func (f *fakeQueue) Claim(id uint) (bool, error) {
	if f.claimDenied {
		return false, nil
	}
	entry, ok := f.entries[id]
	if !ok || entry.Status != model.QueueStatusQueued {
		return false, nil
	}
	entry.Status = model.QueueStatusProcessing
	return true, nil
}

func (f *fakeQueue) FindByID(id uint) (*model.MatchQueueEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return &model.MatchQueueEntry{}, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

type fakeListings struct {
	jobs []model.Job
}

func (f *fakeListings) ListLiveJobs() ([]model.Job, error) {
	return f.jobs, nil
}

func (f *fakeListings) ListLiveInternships() ([]model.Internship, error) {
	return nil, nil
}

func (f *fakeListings) FindJobByID(id uint) (*model.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return &model.Job{}, gorm.ErrRecordNotFound
}

type fakeNotifications struct {
	created []model.Notification
}

func (f *fakeNotifications) Create(n *model.Notification) error {
	f.created = append(f.created, *n)
	return nil
}

type fakeNotifier struct {
	events []model.MatchQueueEntry
}

func (f *fakeNotifier) NotifyQueueResult(entry *model.MatchQueueEntry) {
	f.events = append(f.events, *entry)
}

func newWorkerFixture() (*worker.MatchWorker, *fakeQueue, *fakeNotifications, *fakeNotifier) {
	queue := newFakeQueue()
	listings := &fakeListings{jobs: []model.Job{
		{ID: 42, Title: "Senior React Developer", Status: model.ListingStatusLive},
	}}
	notifications := &fakeNotifications{}
	notifier := &fakeNotifier{}
	w := worker.New(queue, listings, notifications, notifier, 5)
	return w, queue, notifications, notifier
}

func TestRunOnce_SuccessPath(t *testing.T) {
	w, queue, notifications, notifier := newWorkerFixture()
	id, err := queue.Enqueue(42, model.TriggerManual)
	require.NoError(t, err)

	w.RunOnce()

	entry, err := queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusDone, entry.Status)
	assert.Nil(t, entry.ErrorText)
	assert.Empty(t, notifications.created)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, model.QueueStatusDone, notifier.events[0].Status)
	assert.Equal(t, uint(42), notifier.events[0].JobID)
}

func TestRunOnce_UnknownJobFails(t *testing.T) {
	w, queue, notifications, notifier := newWorkerFixture()
	id, err := queue.Enqueue(999, model.TriggerManual)
	require.NoError(t, err)

	w.RunOnce()

	entry, err := queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusFailed, entry.Status)
	require.NotNil(t, entry.ErrorText)
	assert.Contains(t, *entry.ErrorText, "resolve job 999")

	require.Len(t, notifications.created, 1)
	assert.Equal(t, model.NotificationMatchRerunFailed, notifications.created[0].Type)
	assert.Equal(t, id, notifications.created[0].ReferenceID)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, model.QueueStatusFailed, notifier.events[0].Status)
}

func TestRunOnce_FailedEntryIsNeverRetried(t *testing.T) {
	w, queue, _, _ := newWorkerFixture()
	id, err := queue.Enqueue(999, model.TriggerManual)
	require.NoError(t, err)

	w.RunOnce()
	w.RunOnce()

	entry, err := queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusFailed, entry.Status)
}

func TestRunOnce_EmptyQueueIsANoop(t *testing.T) {
	w, _, notifications, notifier := newWorkerFixture()

	w.RunOnce()

	assert.Empty(t, notifications.created)
	assert.Empty(t, notifier.events)
}

func TestRunOnce_OneEntryPerTick(t *testing.T) {
	w, queue, _, _ := newWorkerFixture()
	first, err := queue.Enqueue(42, model.TriggerManual)
	require.NoError(t, err)
	second, err := queue.Enqueue(42, model.TriggerManual)
	require.NoError(t, err)

	w.RunOnce()

	entry1, err := queue.FindByID(first)
	require.NoError(t, err)
	entry2, err := queue.FindByID(second)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusDone, entry1.Status)
	assert.Equal(t, model.QueueStatusQueued, entry2.Status)
}

func TestRunOnce_LostClaimSkipsTick(t *testing.T) {
	w, queue, notifications, notifier := newWorkerFixture()
	id, err := queue.Enqueue(42, model.TriggerManual)
	require.NoError(t, err)
	queue.claimDenied = true

	w.RunOnce()

	entry, err := queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusQueued, entry.Status)
	assert.Empty(t, notifications.created)
	assert.Empty(t, notifier.events)
}

func TestRunOnce_FetchErrorLeavesEntryQueued(t *testing.T) {
	w, queue, _, _ := newWorkerFixture()
	id, err := queue.Enqueue(42, model.TriggerManual)
	require.NoError(t, err)
	queue.fetchErr = errors.New("connection refused")

	w.RunOnce()

	entry, err := queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusQueued, entry.Status)

	// Next tick succeeds once the database is back.
	queue.fetchErr = nil
	w.RunOnce()

	entry, err = queue.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.QueueStatusDone, entry.Status)
}
