// Package sku builds deterministic product codes and slugs. Everything here is a
// pure string function, usable for client-side preview and server-side regeneration
// alike; identical inputs in identical order always yield identical output.
package sku

import (
	"regexp"
	"strings"
)

const codeLen = 3

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonWord    = regexp.MustCompile(`[^\w-]+`)
	whitespace = regexp.MustCompile(`\s+`)
	dashRuns   = regexp.MustCompile(`--+`)
)

// Code strips non-alphanumeric characters, uppercases and truncates to three
// characters. An input with no alphanumeric characters yields "".
func Code(s string) string {
	s = nonAlnum.ReplaceAllString(s, "")
	if len(s) > codeLen {
		s = s[:codeLen]
	}
	return strings.ToUpper(s)
}

// Generate joins the codes of product name, category name, brand name and the
// variant's option values, in that order. Empty codes are omitted entirely, never
// emitted as empty segments. The values order is the order the variant's option
// keys were submitted, so reordering values changes the SKU.
func Generate(name, category, brand string, values []string) string {
	parts := make([]string, 0, 3+len(values))
	for _, s := range []string{name, category, brand} {
		if c := Code(s); c != "" {
			parts = append(parts, c)
		}
	}
	for _, v := range values {
		if c := Code(v); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "-")
}

// Slugify derives a URL slug: lowercase, spaces to dashes, word chars only,
// collapsed and trimmed dashes.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = whitespace.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
