package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"leadhunt-engine/internal/config"
	"leadhunt-engine/internal/events"
	"leadhunt-engine/internal/httpapi"
	"leadhunt-engine/internal/scheduler"
	"leadhunt-engine/internal/scrape"
	"leadhunt-engine/internal/scrape/bing"
	"leadhunt-engine/internal/scrape/duckduckgo"
	"leadhunt-engine/internal/scrape/synth"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
	"leadhunt-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("LEADHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; sqlite and the config file don't share well.
	lock := flock.New(filepath.Join(dataDir, "leadhunt.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is already using %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, warn := range vr.Warnings {
		log.Printf("[config] warning: %s", warn)
	}
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "leadhunt.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hub := events.NewHub()

	var status atomic.Value // stores scrape.Status
	status.Store(scrape.Status{})

	router := httpapi.NewRouter(httpapi.Deps{
		DB:           db,
		Hub:          hub,
		Engine:       buildEngine(cfg),
		CfgVal:       &cfgVal,
		ScrapeStatus: &status,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.Every(ctx, time.Duration(cfg.Retention.SweepMinutes)*time.Minute, "retention", false,
		func(ctx context.Context) error {
			n, err := store.PruneRuns(ctx, db.Pool, cfg.Retention.MaxRuns)
			if n > 0 {
				log.Printf("[retention] pruned %d runs", n)
			}
			return err
		})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

func buildEngine(cfg config.Config) *scrape.Engine {
	timeout := time.Duration(cfg.Scrape.FetchTimeoutSeconds) * time.Second
	limiter := util.NewHostLimiter(cfg.Scrape.RequestsPerSecond, cfg.Scrape.Burst)

	// Slice order is source priority: Bing first, DuckDuckGo as backfill.
	var fetchers []types.Fetcher
	if cfg.Sources.Bing.Enabled {
		p := bing.Default()
		if cfg.Sources.Bing.MaxResults > 0 {
			p.MaxResults = cfg.Sources.Bing.MaxResults
		}
		if cfg.Scrape.UserAgent != "" {
			p.UserAgent = cfg.Scrape.UserAgent
		}
		fetchers = append(fetchers, bing.New(bing.Config{Profile: p, Timeout: timeout}, limiter))
	}
	if cfg.Sources.DuckDuckGo.Enabled {
		p := duckduckgo.Default()
		if cfg.Sources.DuckDuckGo.MaxResults > 0 {
			p.MaxResults = cfg.Sources.DuckDuckGo.MaxResults
		}
		if cfg.Scrape.UserAgent != "" {
			p.UserAgent = cfg.Scrape.UserAgent
		}
		fetchers = append(fetchers, duckduckgo.New(duckduckgo.Config{Profile: p, Timeout: timeout}, limiter))
	}

	return scrape.NewEngine(fetchers, synth.NewSeeded(), scrape.Options{
		SecondaryMin: cfg.Scrape.SecondarySourceMin,
		SyntheticMin: cfg.Scrape.SyntheticMin,
		MaxLeads:     cfg.Scrape.MaxLeads,
	})
}
