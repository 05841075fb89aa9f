package httpapi

import (
	"context"
	"sync/atomic"

	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/events"
	"leadhunt-engine/internal/scrape"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/store"
)

// LeadEngine is the aggregation pipeline entrypoint, injected so handler
// tests can use a double.
type LeadEngine interface {
	Generate(ctx context.Context, q types.Query) (scrape.Outcome, error)
}

type Deps struct {
	DB     *store.DB
	Hub    *events.Hub
	Engine LeadEngine

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	ScrapeStatus *atomic.Value // stores scrape.Status

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
