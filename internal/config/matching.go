package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type MatchingConfig struct {
	WorkerEnabled         bool
	WorkerIntervalSeconds int
	WebhookURL            string
}

var (
	matchingConfig *MatchingConfig
	matchingOnce   sync.Once
)

func LoadMatchingConfig() *MatchingConfig {
	matchingOnce.Do(func() {
		interval := 5
		if s := os.Getenv("MATCH_WORKER_INTERVAL_SECONDS"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 {
				log.Printf("Warning: invalid MATCH_WORKER_INTERVAL_SECONDS %q, defaulting to %d", s, interval)
			} else {
				interval = v
			}
		}

		enabled := os.Getenv("MATCH_WORKER_ENABLED") != "false"

		matchingConfig = &MatchingConfig{
			WorkerEnabled:         enabled,
			WorkerIntervalSeconds: interval,
			WebhookURL:            os.Getenv("MATCH_WEBHOOK_URL"),
		}
	})
	return matchingConfig
}
