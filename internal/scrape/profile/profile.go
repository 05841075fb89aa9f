// Package profile holds the per-source extraction configuration. Selector
// profiles are data, not code, so a source's HTML churn only touches its
// profile.
package profile

// Profile describes how to query one search engine and pull lead records out
// of its result markup. Profiles are defined once per source and never
// mutated.
type Profile struct {
	Name string

	// SearchURL is a template with a single %s slot for the URL-encoded query.
	SearchURL string

	ResultSelector  string
	TitleSelector   string
	LinkSelector    string
	SnippetSelector string

	// MaxResults caps how many leads one fetch may emit, even when the page
	// holds more.
	MaxResults int

	// LinkPrefix absolutizes bare links (no scheme) by that source's
	// convention, e.g. "https://" for bare hostnames.
	LinkPrefix string

	UserAgent string
}
