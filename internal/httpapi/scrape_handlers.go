package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/events"
	"leadhunt-engine/internal/scrape"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/store"
)

type ScrapeHandler struct {
	DB           *store.DB
	Engine       LeadEngine
	Hub          *events.Hub
	CfgVal       *atomic.Value // config.Config
	ScrapeStatus *atomic.Value // scrape.Status
}

type scrapeResponse struct {
	Leads  []domain.Lead  `json:"leads"`
	Source string         `json:"source"`
	Count  int            `json:"count"`
	Counts map[string]int `json:"counts,omitempty"`
}

func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	var q types.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	outcome, err := h.Engine.Generate(r.Context(), q)

	now := time.Now().Format(time.RFC3339)
	st := scrape.Status{LastRunAt: now}
	if prev, ok := h.ScrapeStatus.Load().(scrape.Status); ok {
		st.LastOkAt = prev.LastOkAt
	}

	if err != nil {
		st.LastError = err.Error()
		h.ScrapeStatus.Store(st)

		if errors.Is(err, scrape.ErrIndustryRequired) {
			WriteError(w, r, http.StatusBadRequest, "invalid_input", "Industry is required")
			return
		}
		msg := err.Error()
		if msg == "" {
			msg = "Failed to scrape leads"
		}
		WriteError(w, r, http.StatusInternalServerError, "scrape_failed", msg)
		return
	}

	st.LastOkAt = now
	st.LastCount = len(outcome.Leads)
	st.LastSource = outcome.Source
	h.ScrapeStatus.Store(st)

	runID := uuid.NewString()
	h.recordRun(r.Context(), runID, q, outcome)
	if h.Hub != nil {
		h.Hub.Publish(events.ScrapeCompleted(
			middleware.GetReqID(r.Context()), runID, q.Industry, outcome.Source, len(outcome.Leads)))
	}

	WriteJSON(w, http.StatusOK, scrapeResponse{
		Leads:  outcome.Leads,
		Source: outcome.Source,
		Count:  len(outcome.Leads),
		Counts: outcome.Counts,
	})
}

type batchRequest struct {
	Queries []types.Query `json:"queries"`
}

type batchItem struct {
	Query  types.Query   `json:"query"`
	Leads  []domain.Lead `json:"leads,omitempty"`
	Source string        `json:"source,omitempty"`
	Count  int           `json:"count"`
	Error  string        `json:"error,omitempty"`
}

// Batch fans a handful of queries out through the pipeline with a bounded
// concurrency. Per-query failures come back inline; the batch itself succeeds.
func (h ScrapeHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if len(req.Queries) == 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "queries must not be empty")
		return
	}

	cfg, _ := h.CfgVal.Load().(config.Config)
	maxQueries := cfg.Batch.MaxQueries
	if maxQueries <= 0 {
		maxQueries = 10
	}
	if len(req.Queries) > maxQueries {
		WriteError(w, r, http.StatusBadRequest, "invalid_input",
			"too many queries in one batch")
		return
	}
	maxConcurrent := cfg.Batch.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}

	items := make([]batchItem, len(req.Queries))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxConcurrent)

	for i, q := range req.Queries {
		i, q := i, q
		g.Go(func() error {
			outcome, err := h.Engine.Generate(ctx, q)
			if err != nil {
				items[i] = batchItem{Query: q, Error: err.Error()}
				return nil // per-query failures don't cancel siblings
			}
			items[i] = batchItem{
				Query:  q,
				Leads:  outcome.Leads,
				Source: outcome.Source,
				Count:  len(outcome.Leads),
			}
			runID := uuid.NewString()
			h.recordRun(ctx, runID, q, outcome)
			return nil
		})
	}
	_ = g.Wait()

	WriteJSON(w, http.StatusOK, map[string]any{"results": items})
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, _ := h.ScrapeStatus.Load().(scrape.Status)
	WriteJSON(w, http.StatusOK, st)
}

func (h ScrapeHandler) recordRun(ctx context.Context, runID string, q types.Query, outcome scrape.Outcome) {
	if h.DB == nil {
		return
	}
	synthetic := 0
	for _, l := range outcome.Leads {
		if l.Synthetic {
			synthetic++
		}
	}
	run := store.Run{
		ID:             runID,
		Industry:       q.Industry,
		Location:       q.Location,
		Source:         outcome.Source,
		LeadCount:      len(outcome.Leads),
		SyntheticCount: synthetic,
	}
	if err := store.InsertRun(ctx, h.DB.Pool, run); err != nil {
		log.Printf("[runs] insert error: %v run_id=%s", err, runID)
	}
}
