// Package slugs converts between URL path segments and the free-text city
// and category values stored on listings.
package slugs

import (
	"net/url"
	"strings"
	"unicode"
)

// Normalize URL-decodes and lower-cases a path segment for matching.
// Undecodable input is matched as-is rather than rejected.
func Normalize(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		decoded = segment
	}
	return strings.ToLower(strings.TrimSpace(decoded))
}

// Titleize turns a slug into a display name as a last-resort fallback when
// no stored value is available: hyphens become spaces, each word is
// title-cased.
func Titleize(slug string) string {
	words := strings.FieldsFunc(Normalize(slug), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Slugify produces a URL slug from a stored city or category value:
// lower-case, runs of non-alphanumerics collapsed to single hyphens. Names
// with no ASCII letters at all (Arabic cities) get a percent-encoded slug
// instead, which Normalize decodes back for matching.
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	if slug := strings.TrimRight(b.String(), "-"); slug != "" {
		return slug
	}
	words := strings.Fields(strings.ToLower(text))
	return url.PathEscape(strings.Join(words, "-"))
}
