package types

import (
	"context"
	"strings"

	"leadhunt-engine/internal/domain"
)

// Query is one lead-generation request.
type Query struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
}

// Terms builds the search string sent to live sources.
func (q Query) Terms() string {
	industry := strings.TrimSpace(q.Industry)
	location := strings.TrimSpace(q.Location)
	if location == "" {
		return industry
	}
	return industry + " in " + location
}

type Result struct {
	Source string
	Leads  []domain.Lead
}

// Fetcher is one live lead source. Fetch errors are absorbed by the pipeline
// and treated as zero results; a failing fetcher never takes down a run.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, q Query) (Result, error)
}
