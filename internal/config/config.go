package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SourceConfig struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	MaxResults int  `yaml:"max_results" json:"max_results"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Scrape struct {
		FetchTimeoutSeconds int     `yaml:"fetch_timeout_seconds" json:"fetch_timeout_seconds"`
		RequestsPerSecond   float64 `yaml:"requests_per_second" json:"requests_per_second"`
		Burst               int     `yaml:"burst" json:"burst"`
		SecondarySourceMin  int     `yaml:"secondary_source_min" json:"secondary_source_min"`
		SyntheticMin        int     `yaml:"synthetic_min" json:"synthetic_min"`
		MaxLeads            int     `yaml:"max_leads" json:"max_leads"`
		UserAgent           string  `yaml:"user_agent" json:"user_agent"`
	} `yaml:"scrape" json:"scrape"`

	Sources struct {
		Bing       SourceConfig `yaml:"bing" json:"bing"`
		DuckDuckGo SourceConfig `yaml:"duckduckgo" json:"duckduckgo"`
	} `yaml:"sources" json:"sources"`

	Batch struct {
		MaxQueries    int `yaml:"max_queries" json:"max_queries"`
		MaxConcurrent int `yaml:"max_concurrent" json:"max_concurrent"`
	} `yaml:"batch" json:"batch"`

	Retention struct {
		MaxRuns      int `yaml:"max_runs" json:"max_runs"`
		SweepMinutes int `yaml:"sweep_minutes" json:"sweep_minutes"`
	} `yaml:"retention" json:"retention"`
}

// Default is the shipped configuration, used when no config file exists yet.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38471
	cfg.App.DataDir = "."

	cfg.Scrape.FetchTimeoutSeconds = 8
	cfg.Scrape.RequestsPerSecond = 1
	cfg.Scrape.Burst = 2
	cfg.Scrape.SecondarySourceMin = 10
	cfg.Scrape.SyntheticMin = 5
	cfg.Scrape.MaxLeads = 25
	cfg.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	cfg.Sources.Bing = SourceConfig{Enabled: true, MaxResults: 20}
	cfg.Sources.DuckDuckGo = SourceConfig{Enabled: true, MaxResults: 15}

	cfg.Batch.MaxQueries = 10
	cfg.Batch.MaxConcurrent = 3

	cfg.Retention.MaxRuns = 500
	cfg.Retention.SweepMinutes = 60
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
