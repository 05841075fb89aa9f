// Package export renders a finished lead set for download.
package export

import (
	"strings"

	"leadhunt-engine/internal/domain"
)

// CSV renders leads with the header row Name,URL,Description,Contact. Every
// field is double-quote-wrapped unconditionally (embedded quotes doubled),
// which encoding/csv cannot be forced to do; a missing contact becomes "N/A".
func CSV(leads []domain.Lead) string {
	var b strings.Builder
	writeRow(&b, "Name", "URL", "Description", "Contact")
	for _, l := range leads {
		contact := l.Contact
		if contact == "" {
			contact = "N/A"
		}
		writeRow(&b, l.Name, l.URL, l.Description, contact)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
