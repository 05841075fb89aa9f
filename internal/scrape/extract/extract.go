// Package extract turns one page of search-result markup into normalized
// leads, driven entirely by the source's selector profile.
package extract

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/scrape/contact"
	"leadhunt-engine/internal/scrape/profile"
	"leadhunt-engine/internal/scrape/util"
)

// Leads walks the result nodes matched by p.ResultSelector in document order,
// stopping at p.MaxResults. Nodes missing a title or link are skipped, never
// emitted half-filled.
func Leads(markup string, p profile.Profile) []domain.Lead {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Printf("[extract:%s] parse: %v", p.Name, err)
		return nil
	}

	var out []domain.Lead
	doc.Find(p.ResultSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if p.MaxResults > 0 && len(out) >= p.MaxResults {
			return false
		}

		title := util.CleanText(sel.Find(p.TitleSelector).First().Text())
		href, _ := sel.Find(p.LinkSelector).First().Attr("href")
		href = strings.TrimSpace(href)
		if title == "" || href == "" {
			return true
		}

		snippet := util.CleanText(sel.Find(p.SnippetSelector).First().Text())
		desc := snippet
		if desc == "" {
			desc = domain.NoDescription
		}

		out = append(out, domain.Lead{
			Name:        title,
			URL:         absoluteURL(href, p.LinkPrefix),
			Description: desc,
			Contact:     contact.Infer(snippet),
			Source:      p.Name,
		})
		return true
	})

	return out
}

func absoluteURL(href, prefix string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	// scheme-relative links keep their host
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return prefix + href
}
