// Package synth fabricates plausible-looking leads when the live sources come
// up short. The records are clearly marked Synthetic.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/types"
	"leadhunt-engine/internal/scrape/util"
)

const (
	minLeads = 8
	maxLeads = 15
)

// Generator produces fallback leads. The rand source is injected so tests can
// seed it; production uses NewSeeded.
type Generator struct {
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

func NewSeeded() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (g *Generator) Name() string { return "synthetic" }

// Generate emits between 8 and 15 records. Business names may repeat across a
// batch; URLs never do, the 1-based index keeps them unique.
func (g *Generator) Generate(q types.Query) []domain.Lead {
	industry := strings.TrimSpace(q.Industry)
	location := strings.TrimSpace(q.Location)

	slug := util.Slugify(industry)
	suffixes := suffixesFor(industry)

	n := minLeads + g.rnd.Intn(maxLeads-minLeads+1)
	out := make([]domain.Lead, 0, n)
	for i := 1; i <= n; i++ {
		surname := surnames[g.rnd.Intn(len(surnames))]
		suffix := suffixes[g.rnd.Intn(len(suffixes))]
		name := surname + "'s " + suffix

		where := location
		if where == "" {
			where = areaQualifiers[g.rnd.Intn(len(areaQualifiers))]
		}

		lead := domain.Lead{
			Name:        name,
			URL:         fmt.Sprintf("https://example-%s-%d.com", slug, i),
			Description: fmt.Sprintf("Trusted %s business serving %s. Reach out for a free quote.", strings.ToLower(industry), where),
			Source:      g.Name(),
			Synthetic:   true,
		}
		if g.rnd.Intn(2) == 0 {
			lead.Contact = "contact@" + emailSlug(name) + ".com"
		}
		out = append(out, lead)
	}
	return out
}

func emailSlug(name string) string {
	return strings.ReplaceAll(util.Slugify(name), "'", "")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
