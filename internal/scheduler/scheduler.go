package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task on the interval until ctx is cancelled. When immediate is
// true the first run fires right away instead of waiting one full interval.
func Every(ctx context.Context, interval time.Duration, name string, immediate bool, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	if immediate {
		if err := task(ctx); err != nil {
			log.Printf("[%s] error: %v", name, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				log.Printf("[%s] error: %v", name, err)
			}
		}
	}
}
