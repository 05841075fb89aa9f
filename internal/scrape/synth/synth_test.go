package synth_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"leadhunt-engine/internal/scrape/synth"
	"leadhunt-engine/internal/scrape/types"
)

func seeded(seed int64) *synth.Generator {
	return synth.New(rand.New(rand.NewSource(seed)))
}

func TestGenerateCountInRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		leads := seeded(seed).Generate(types.Query{Industry: "restaurant"})
		require.GreaterOrEqual(t, len(leads), 8, "seed %d", seed)
		require.LessOrEqual(t, len(leads), 15, "seed %d", seed)
	}
}

func TestGenerateDentistSuffixes(t *testing.T) {
	allowed := map[string]bool{
		"Dental Care":       true,
		"Dentistry":         true,
		"Dental Clinic":     true,
		"Dental Associates": true,
	}

	for seed := int64(0); seed < 10; seed++ {
		for _, l := range seeded(seed).Generate(types.Query{Industry: "dentist"}) {
			parts := strings.SplitN(l.Name, "'s ", 2)
			require.Len(t, parts, 2, "name %q", l.Name)
			require.True(t, allowed[parts[1]], "unexpected suffix in %q", l.Name)
		}
	}
}

func TestGenerateKeywordSubstringMatch(t *testing.T) {
	// "Emergency Dentist Office" contains "dentist" after lower-casing
	leads := seeded(3).Generate(types.Query{Industry: "Emergency Dentist Office"})
	for _, l := range leads {
		require.Contains(t, l.Name, "Dent")
	}
}

func TestGenerateDefaultSuffixPool(t *testing.T) {
	allowed := map[string]bool{"Services": true, "Solutions": true, "Group": true, "Company": true}
	for _, l := range seeded(7).Generate(types.Query{Industry: "underwater basket weaving"}) {
		parts := strings.SplitN(l.Name, "'s ", 2)
		require.Len(t, parts, 2)
		require.True(t, allowed[parts[1]], "unexpected suffix in %q", l.Name)
	}
}

func TestGenerateURLsUniqueAndSlugged(t *testing.T) {
	leads := seeded(1).Generate(types.Query{Industry: "Real Estate Agency"})

	pattern := regexp.MustCompile(`^https://example-real-estate-agency-\d+\.com$`)
	seen := map[string]bool{}
	for i, l := range leads {
		require.Regexp(t, pattern, l.URL)
		require.Equal(t, fmt.Sprintf("https://example-real-estate-agency-%d.com", i+1), l.URL)
		require.False(t, seen[l.URL], "duplicate url %q", l.URL)
		seen[l.URL] = true
	}
}

func TestGenerateMarkedSynthetic(t *testing.T) {
	for _, l := range seeded(2).Generate(types.Query{Industry: "salon"}) {
		require.True(t, l.Synthetic)
		require.Equal(t, "synthetic", l.Source)
		require.NotEmpty(t, l.Name)
		require.NotEmpty(t, l.URL)
		require.NotEmpty(t, l.Description)
	}
}

func TestGenerateLocationUsedVerbatim(t *testing.T) {
	leads := seeded(4).Generate(types.Query{Industry: "plumber", Location: "Austin, TX"})
	for _, l := range leads {
		require.Contains(t, l.Description, "Austin, TX")
	}
}

func TestGenerateContactShape(t *testing.T) {
	var withContact int
	for seed := int64(0); seed < 10; seed++ {
		for _, l := range seeded(seed).Generate(types.Query{Industry: "fitness"}) {
			if l.Contact == "" {
				continue
			}
			withContact++
			require.True(t, strings.HasPrefix(l.Contact, "contact@"), "contact %q", l.Contact)
			require.True(t, strings.HasSuffix(l.Contact, ".com"), "contact %q", l.Contact)
			require.NotContains(t, l.Contact, "'")
			require.NotContains(t, l.Contact, " ")
		}
	}
	// a coin flip over ~100 leads lands on heads at least once
	require.Positive(t, withContact)
}
