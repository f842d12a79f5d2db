// Package slug derives URL-safe identifiers from resource titles.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	goslug "github.com/goliatone/go-slug"
)

// Make converts a title into a slug: lowercase ASCII letters and digits are
// kept, whitespace, hyphen and underscore runs collapse to a single hyphen,
// every other character is stripped, and no hyphen leads or trails. The
// reduced form then goes through the slug normalizer. Make is idempotent.
func Make(title string) string {
	if IsValid(title) {
		return title
	}
	reduced := reduce(title)
	if normalized, err := goslug.Normalize(reduced); err == nil && normalized != "" {
		return normalized
	}
	return reduced
}

// IsValid reports whether s already satisfies the slug rules.
func IsValid(s string) bool {
	return s != "" && goslug.IsValid(s) && s == reduce(s)
}

// WithSuffix disambiguates a taken slug by appending the current
// epoch-millisecond timestamp.
func WithSuffix(s string) string {
	return fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
}

// reduce enforces the slug charset [a-z0-9-]. Non-ASCII letters are stripped,
// not transliterated, matching how registry slugs treat them.
func reduce(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
