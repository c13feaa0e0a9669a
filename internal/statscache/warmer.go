package statscache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Warmer refreshes the cached statistics on a fixed schedule so the first
// request after expiry does not pay for the aggregate traversal.
type Warmer struct {
	cron *cron.Cron
}

func NewWarmer(svc *Service, schedule string) (*Warmer, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := svc.Refresh(ctx); err != nil {
			log.Printf("[statscache] scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid warm schedule %q: %w", schedule, err)
	}

	return &Warmer{cron: c}, nil
}

func (w *Warmer) Start() {
	w.cron.Start()
}

func (w *Warmer) Stop() {
	w.cron.Stop()
}
