package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape"
	"leadhunt-engine/internal/scrape/synth"
	"leadhunt-engine/internal/scrape/types"
)

type fakeFetcher struct {
	name  string
	leads []domain.Lead
	err   error
	calls int
}

func (f *fakeFetcher) Name() string { return f.name }

func (f *fakeFetcher) Fetch(ctx context.Context, q types.Query) (types.Result, error) {
	f.calls++
	if f.err != nil {
		return types.Result{Source: f.name}, f.err
	}
	return types.Result{Source: f.name, Leads: f.leads}, nil
}

type fakeGen struct {
	leads []domain.Lead
	calls int
}

func (g *fakeGen) Name() string { return "synthetic" }

func (g *fakeGen) Generate(q types.Query) []domain.Lead {
	g.calls++
	return g.leads
}

func mkLeads(prefix string, n int) []domain.Lead {
	out := make([]domain.Lead, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Lead{
			Name:        fmt.Sprintf("%s Biz %d", prefix, i),
			URL:         fmt.Sprintf("https://%s-%d.example.com", prefix, i),
			Description: "x",
			Source:      prefix,
		})
	}
	return out
}

func newEngine(primary, secondary *fakeFetcher, gen scrape.Generator) *scrape.Engine {
	return scrape.NewEngine([]types.Fetcher{primary, secondary}, gen, scrape.Options{})
}

func TestGenerateRequiresIndustry(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 3)}
	secondary := &fakeFetcher{name: "two"}
	gen := &fakeGen{}
	eng := newEngine(primary, secondary, gen)

	for _, industry := range []string{"", "   ", "\t"} {
		_, err := eng.Generate(context.Background(), types.Query{Industry: industry})
		require.ErrorIs(t, err, scrape.ErrIndustryRequired)
	}
	require.Zero(t, primary.calls)
	require.Zero(t, secondary.calls)
	require.Zero(t, gen.calls)
}

func TestGenerateSecondarySkippedWhenPrimarySuffices(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 12)}
	secondary := &fakeFetcher{name: "two", leads: mkLeads("two", 5)}
	gen := &fakeGen{}
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Equal(t, 1, primary.calls)
	require.Zero(t, secondary.calls)
	require.Zero(t, gen.calls)
	require.Len(t, out.Leads, 12)
	require.Equal(t, scrape.SourceWebScraping, out.Source)
}

func TestGenerateSecondaryConsultedBelowThreshold(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 3)}
	secondary := &fakeFetcher{name: "two", leads: mkLeads("two", 4)}
	gen := &fakeGen{leads: mkLeads("gen", 9)}
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Equal(t, 1, secondary.calls)
	// 7 combined is above the synthetic threshold
	require.Zero(t, gen.calls)
	require.Len(t, out.Leads, 7)
	// primary results keep precedence in ordering
	require.Equal(t, "one Biz 0", out.Leads[0].Name)
}

func TestGenerateSyntheticFallback(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 1)}
	secondary := &fakeFetcher{name: "two", leads: mkLeads("two", 2)}
	synthetic := mkLeads("gen", 9)
	for i := range synthetic {
		synthetic[i].Synthetic = true
	}
	gen := &fakeGen{leads: synthetic}
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)
	require.Len(t, out.Leads, 12)
	// at least one live lead survived, so the run still counts as scraped
	require.Equal(t, scrape.SourceWebScraping, out.Source)
}

func TestGenerateAdapterFailureAbsorbed(t *testing.T) {
	primary := &fakeFetcher{name: "one", err: errors.New("status 403")}
	secondary := &fakeFetcher{name: "two", leads: mkLeads("two", 6)}
	gen := &fakeGen{}
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Equal(t, 1, secondary.calls)
	require.Len(t, out.Leads, 6)
	require.Equal(t, 0, out.Counts["one"])
	require.Equal(t, 6, out.Counts["two"])
}

func TestGenerateDedupLastWriteWins(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: []domain.Lead{
		{Name: "Stale", URL: "https://dup.example.com", Description: "old", Source: "one"},
		{Name: "Other", URL: "https://other.example.com", Description: "x", Source: "one"},
	}}
	secondary := &fakeFetcher{name: "two", leads: []domain.Lead{
		{Name: "Fresh", URL: "https://dup.example.com", Description: "new", Contact: "a@b.com", Source: "two"},
	}}
	gen := &fakeGen{leads: mkLeads("gen", 8)}
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)

	var dup *domain.Lead
	for i := range out.Leads {
		if out.Leads[i].URL == "https://dup.example.com" {
			require.Nil(t, dup, "url must appear exactly once")
			dup = &out.Leads[i]
		}
	}
	require.NotNil(t, dup)
	require.Equal(t, "Fresh", dup.Name)
	require.Equal(t, "new", dup.Description)
	require.Equal(t, "a@b.com", dup.Contact)
	// first-seen ordering: the deduped record holds the primary's slot
	require.Equal(t, "https://dup.example.com", out.Leads[0].URL)
}

func TestGenerateCapsAtMaxLeads(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 40)}
	secondary := &fakeFetcher{name: "two"}
	eng := newEngine(primary, secondary, &fakeGen{})

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.Len(t, out.Leads, 25)
}

func TestGenerateInvariants(t *testing.T) {
	primary := &fakeFetcher{name: "one", leads: mkLeads("one", 11)}
	secondary := &fakeFetcher{name: "two"}
	eng := newEngine(primary, secondary, &fakeGen{})

	out, err := eng.Generate(context.Background(), types.Query{Industry: "plumber"})
	require.NoError(t, err)
	require.LessOrEqual(t, len(out.Leads), 25)
	for _, l := range out.Leads {
		require.NotEmpty(t, l.Name)
		require.NotEmpty(t, l.URL)
	}
}

func TestGenerateEndToEndDemo(t *testing.T) {
	primary := &fakeFetcher{name: "one"}
	secondary := &fakeFetcher{name: "two"}
	gen := synth.New(rand.New(rand.NewSource(42)))
	eng := newEngine(primary, secondary, gen)

	out, err := eng.Generate(context.Background(), types.Query{Industry: "restaurant", Location: ""})
	require.NoError(t, err)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, secondary.calls)

	require.Equal(t, scrape.SourceDemo, out.Source)
	require.GreaterOrEqual(t, len(out.Leads), 8)
	require.LessOrEqual(t, len(out.Leads), 15)

	pattern := regexp.MustCompile(`^https://example-restaurant-\d+\.com$`)
	for _, l := range out.Leads {
		require.Regexp(t, pattern, l.URL)
		require.True(t, l.Synthetic)
	}
}
