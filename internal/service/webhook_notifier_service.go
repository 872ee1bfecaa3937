package service

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/talenthive/talenthive-backend/internal/model"
)

type WebhookNotifierInterface interface {
	NotifyQueueResult(entry *model.MatchQueueEntry)
}

// WebhookNotifier posts queue terminal states to an external webhook.
// Delivery is fire-and-forget: failures are logged and never affect the
// worker's status bookkeeping. With no URL configured it does nothing.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

func (s *WebhookNotifier) NotifyQueueResult(entry *model.MatchQueueEntry) {
	if s.url == "" {
		return
	}

	payload := map[string]any{
		"event_id": uuid.New().String(),
		"queue_id": entry.ID,
		"job_id":   entry.JobID,
		"status":   entry.Status,
	}
	if entry.ErrorText != nil {
		payload["error_text"] = *entry.ErrorText
	}

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.url)
	if err != nil {
		log.Printf("[webhook] Delivery error for queue entry %d: %v", entry.ID, err)
		return
	}
	if resp.IsError() {
		log.Printf("[webhook] Endpoint returned %d for queue entry %d", resp.StatusCode(), entry.ID)
	}
}
