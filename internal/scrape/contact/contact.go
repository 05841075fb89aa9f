// Package contact scans free text for a way to reach a business.
package contact

import "regexp"

var (
	emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	// North-American style: optional parenthesized area code, then 3+4 digits.
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

// Infer returns the first email found in text, else the first phone number,
// else "". Only one contact is ever pulled from a snippet.
func Infer(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return m
	}
	if m := phoneRe.FindString(text); m != "" {
		return m
	}
	return ""
}
