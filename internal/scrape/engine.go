// Package scrape orchestrates the lead sources: live adapters in priority
// order, thresholds that pull in the next source, synthetic fallback, dedup,
// and the final cap.
package scrape

import (
	"context"
	"errors"
	"log"
	"strings"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
)

// ErrIndustryRequired is returned before any network activity when the
// request carries no industry.
var ErrIndustryRequired = errors.New("industry is required")

const (
	SourceWebScraping = "web_scraping"
	SourceDemo        = "demo"
)

// Generator is the synthetic fallback producer.
type Generator interface {
	Name() string
	Generate(q types.Query) []domain.Lead
}

// Options are the pipeline thresholds. Zero values fall back to the shipped
// defaults.
type Options struct {
	// SecondaryMin: consult the next live source while the working set holds
	// fewer leads than this.
	SecondaryMin int
	// SyntheticMin: invoke the synthetic generator when the live sources
	// combined yield fewer leads than this.
	SyntheticMin int
	// MaxLeads caps the final result.
	MaxLeads int
}

func (o Options) withDefaults() Options {
	if o.SecondaryMin <= 0 {
		o.SecondaryMin = 10
	}
	if o.SyntheticMin <= 0 {
		o.SyntheticMin = 5
	}
	if o.MaxLeads <= 0 {
		o.MaxLeads = 25
	}
	return o
}

// Outcome is one finished aggregation run.
type Outcome struct {
	Leads []domain.Lead `json:"leads"`
	// Source is the coarse provenance tag: "web_scraping" when any live lead
	// survived dedup, "demo" when the result is empty or fully synthetic.
	// Per-lead Synthetic flags carry the finer signal.
	Source string `json:"source"`
	// Counts holds raw per-source lead counts before dedup.
	Counts map[string]int `json:"counts"`
}

// Engine runs the aggregation pipeline. Fetchers are consulted in slice
// order; their failures are logged and treated as zero results.
type Engine struct {
	fetchers []types.Fetcher
	gen      Generator
	opts     Options
}

func NewEngine(fetchers []types.Fetcher, gen Generator, opts Options) *Engine {
	return &Engine{
		fetchers: fetchers,
		gen:      gen,
		opts:     opts.withDefaults(),
	}
}

// Generate produces up to MaxLeads deduplicated leads for the query.
// Fetchers run sequentially: the secondary source must observably not be hit
// when the primary alone satisfies the threshold.
func (e *Engine) Generate(ctx context.Context, q types.Query) (Outcome, error) {
	if strings.TrimSpace(q.Industry) == "" {
		return Outcome{}, ErrIndustryRequired
	}

	counts := make(map[string]int, len(e.fetchers)+1)
	var working []domain.Lead

	for i, f := range e.fetchers {
		if i > 0 && len(working) >= e.opts.SecondaryMin {
			break
		}
		res, err := f.Fetch(ctx, q)
		if err != nil {
			// best-effort source: absorb and move on
			log.Printf("[pipeline] source=%s err=%v", f.Name(), err)
			counts[f.Name()] = 0
			continue
		}
		counts[f.Name()] = len(res.Leads)
		working = append(working, res.Leads...)
	}

	if len(working) < e.opts.SyntheticMin && e.gen != nil {
		gen := e.gen.Generate(q)
		counts[e.gen.Name()] = len(gen)
		working = append(working, gen...)
		log.Printf("[pipeline] live=%d below threshold, generated %d synthetic leads", len(working)-len(gen), len(gen))
	}

	leads := dedupeByURL(working)
	if len(leads) > e.opts.MaxLeads {
		leads = leads[:e.opts.MaxLeads]
	}

	// Live provenance holds as long as any non-synthetic lead survived dedup,
	// even when synthetic backfill dominates the result.
	source := SourceDemo
	for _, l := range leads {
		if !l.Synthetic {
			source = SourceWebScraping
			break
		}
	}

	return Outcome{Leads: leads, Source: source, Counts: counts}, nil
}

// dedupeByURL collapses leads sharing a canonicalized URL. Last write wins on
// field values; the first-seen position decides ordering.
func dedupeByURL(in []domain.Lead) []domain.Lead {
	idx := make(map[string]int, len(in))
	out := make([]domain.Lead, 0, len(in))
	for _, l := range in {
		key := util.CanonicalizeURL(l.URL)
		if at, ok := idx[key]; ok {
			out[at] = l
			continue
		}
		idx[key] = len(out)
		out = append(out, l)
	}
	return out
}
