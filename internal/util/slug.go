// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	// Matches characters that carry no slug meaning (keeps word chars, whitespace, hyphens).
	invalidSlugCharRe = regexp.MustCompile(`[^\w\s-]`)
	// Matches runs of whitespace, underscores, and hyphens (collapsed to a single hyphen).
	slugSeparatorRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts free text to a canonical URL-safe slug.
// The slug is the source of truth for idea and organization identity in links.
//
// Rules:
//  1. Lowercase
//  2. Drop everything that is not a word character, whitespace, or hyphen
//  3. Collapse runs of whitespace/underscores/hyphens into a single hyphen
//  4. Trim leading/trailing hyphens
//
// Slugify is idempotent: Slugify(Slugify(x)) == Slugify(x). Input made of
// nothing but punctuation yields an empty string, which callers must expect.
//
// Examples:
//
//	"Foo Bar"        → "foo-bar"
//	"ZK e-mail!"     → "zk-e-mail"
//	"snake_case_id"  → "snake-case-id"
//	"!!!"            → ""
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = invalidSlugCharRe.ReplaceAllString(s, "")
	s = slugSeparatorRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
