// Package duckduckgo queries DuckDuckGo's HTML endpoint. Secondary live
// source, consulted when Bing comes up short.
package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadhunt-engine/internal/scrape/extract"
	"leadhunt-engine/internal/scrape/profile"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
)

const maxBodyBytes = 2 << 20

// Default is the shipped selector profile for DuckDuckGo's html endpoint.
func Default() profile.Profile {
	return profile.Profile{
		Name:            "duckduckgo",
		SearchURL:       "https://html.duckduckgo.com/html/?q=%s",
		ResultSelector:  ".result",
		TitleSelector:   ".result__a",
		LinkSelector:    ".result__a",
		SnippetSelector: ".result__snippet",
		MaxResults:      15,
		LinkPrefix:      "https://duckduckgo.com",
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
		return types.Result{Source: s.Name()}, fmt.Errorf("duckduckgo get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{Source: s.Name()}, fmt.Errorf("duckduckgo status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return types.Result{Source: s.Name()}, fmt.Errorf("duckduckgo read: %w", err)
	}

	leads := extract.Leads(string(body), p)
	for i := range leads {
		leads[i].URL = unwrapRedirect(leads[i].URL)
	}

	log.Printf("[duckduckgo] query=%q leads=%d", q.Terms(), len(leads))
	return types.Result{Source: s.Name(), Leads: leads}, nil
}

// unwrapRedirect resolves DuckDuckGo's /l/?uddg=<encoded> click-through
// wrappers to the destination URL.
func unwrapRedirect(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if !strings.HasPrefix(u.Path, "/l/") {
		return raw
	}
	dest := u.Query().Get("uddg")
	if dest == "" {
		return raw
	}
	if du, err := url.Parse(dest); err == nil && du.Host != "" {
		return du.String()
	}
	return raw
}
