package duckduckgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"leadhunt-engine/internal/scrape/duckduckgo"
	"leadhunt-engine/internal/scrape/types"
)

func fixture() string {
	wrapped := "//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://acme.example.com/services")
	return `<html><body>
<div class="result"><a class="result__a" href="` + wrapped + `">Acme Plumbing</a>
  <a class="result__snippet">Drain repair. Call (555) 123-4567.</a></div>
<div class="result"><a class="result__a" href="https://pipes.example.com">Best Pipes</a>
  <a class="result__snippet">Family owned.</a></div>
</body></html>`
}

func newScraper(t *testing.T, handler http.HandlerFunc) *duckduckgo.Scraper {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := duckduckgo.Default()
	p.SearchURL = srv.URL + "/html/?q=%s"
	return duckduckgo.New(duckduckgo.Config{Profile: p}, nil)
}

func TestFetchUnwrapsRedirects(t *testing.T) {
	s := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixture()))
	})

	res, err := s.Fetch(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Equal(t, "duckduckgo", res.Source)
	require.Len(t, res.Leads, 2)

	require.Equal(t, "https://acme.example.com/services", res.Leads[0].URL)
	require.Equal(t, "(555) 123-4567", res.Leads[0].Contact)
	require.Equal(t, "https://pipes.example.com", res.Leads[1].URL)
}

func TestFetchErrorStatus(t *testing.T) {
	s := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	res, err := s.Fetch(context.Background(), types.Query{Industry: "plumber"})
	require.Error(t, err)
	require.Empty(t, res.Leads)
}
