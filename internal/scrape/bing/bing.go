// Package bing queries Bing's public search results page and extracts lead
// records from the HTML. Primary live source.
package bing

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"leadhunt-engine/internal/scrape/extract"
	"leadhunt-engine/internal/scrape/profile"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
)

const maxBodyBytes = 2 << 20

// Default is the shipped selector profile for Bing result pages.
func Default() profile.Profile {
	return profile.Profile{
		Name:            "bing",
		SearchURL:       "https://www.bing.com/search?q=%s",
		ResultSelector:  "li.b_algo",
		TitleSelector:   "h2 a",
		LinkSelector:    "h2 a",
		SnippetSelector: ".b_caption p",
		MaxResults:      20,
		LinkPrefix:      "https://",
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	}
}

type Config struct {
	Profile profile.Profile
	Timeout time.Duration
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return s.cfg.Profile.Name }

// Fetch performs one best-effort request. No retry, no backoff; any failure
// is surfaced as an error for the pipeline to absorb.
func (s *Scraper) Fetch(ctx context.Context, q types.Query) (types.Result, error) {
	p := s.cfg.Profile
	searchURL := fmt.Sprintf(p.SearchURL, url.QueryEscape(q.Terms()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return types.Result{Source: s.Name()}, err
	}
	req.Header.Set("User-Agent", p.UserAgent)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, searchURL); err != nil {
			return types.Result{Source: s.Name()}, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return types.Result{Source: s.Name()}, fmt.Errorf("bing get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{Source: s.Name()}, fmt.Errorf("bing status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return types.Result{Source: s.Name()}, fmt.Errorf("bing read: %w", err)
	}

	leads := extract.Leads(string(body), p)
	log.Printf("[bing] query=%q leads=%d", q.Terms(), len(leads))
	return types.Result{Source: s.Name(), Leads: leads}, nil
}
