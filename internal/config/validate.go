package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Scrape.UserAgent = strings.TrimSpace(out.Scrape.UserAgent)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scrape.FetchTimeoutSeconds <= 0 {
		res.addErr("scrape.fetch_timeout_seconds must be > 0")
	} else if out.Scrape.FetchTimeoutSeconds > 60 {
		res.addWarn("scrape.fetch_timeout_seconds is very high (%d); a stuck source will stall requests.", out.Scrape.FetchTimeoutSeconds)
	}
	if out.Scrape.RequestsPerSecond <= 0 {
		res.addErr("scrape.requests_per_second must be > 0")
	}
	if out.Scrape.Burst <= 0 {
		res.addErr("scrape.burst must be > 0")
	}
	if out.Scrape.SecondarySourceMin <= 0 {
		res.addErr("scrape.secondary_source_min must be > 0")
	}
	if out.Scrape.SyntheticMin <= 0 {
		res.addErr("scrape.synthetic_min must be > 0")
	}
	if out.Scrape.MaxLeads <= 0 {
		res.addErr("scrape.max_leads must be > 0")
	}
	if out.Scrape.SyntheticMin > out.Scrape.SecondarySourceMin {
		res.addWarn("scrape.synthetic_min exceeds scrape.secondary_source_min; the fallback will fire even when both sources were consulted.")
	}
	if out.Scrape.UserAgent == "" {
		res.addWarn("scrape.user_agent is empty; search engines are more likely to block anonymous clients.")
	}

	if !out.Sources.Bing.Enabled && !out.Sources.DuckDuckGo.Enabled {
		res.addWarn("no live sources enabled; every run will return synthetic leads.")
	}
	if out.Sources.Bing.Enabled && out.Sources.Bing.MaxResults <= 0 {
		res.addErr("sources.bing.max_results must be > 0 when enabled")
	}
	if out.Sources.DuckDuckGo.Enabled && out.Sources.DuckDuckGo.MaxResults <= 0 {
		res.addErr("sources.duckduckgo.max_results must be > 0 when enabled")
	}

	if out.Batch.MaxQueries <= 0 {
		res.addErr("batch.max_queries must be > 0")
	}
	if out.Batch.MaxConcurrent <= 0 {
		res.addErr("batch.max_concurrent must be > 0")
	}

	if out.Retention.MaxRuns <= 0 {
		res.addErr("retention.max_runs must be > 0")
	}
	if out.Retention.SweepMinutes <= 0 {
		res.addErr("retention.sweep_minutes must be > 0")
	}

	return out, res
}
