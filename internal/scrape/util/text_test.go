package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leadhunt-engine/internal/scrape/util"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b c", util.CleanText("  a \n b\t\tc  "))
	require.Equal(t, "x y", util.CleanText("x\u00a0y"))
	require.Empty(t, util.CleanText("   "))
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "real-estate-agency", util.Slugify("Real Estate Agency"))
	require.Equal(t, "dentist", util.Slugify("  Dentist "))
	require.Equal(t, "a-b", util.Slugify("A \t\n B"))
	require.Empty(t, util.Slugify(""))
}

func TestCanonicalizeURL(t *testing.T) {
	require.Equal(t,
		"https://example.com/path",
		util.CanonicalizeURL("HTTPS://Example.COM/path#frag"))
	require.Equal(t,
		"https://example.com/?q=x",
		util.CanonicalizeURL("https://example.com/?q=x&utm_source=feed&fbclid=abc"))
	require.Empty(t, util.CanonicalizeURL("  "))
}
