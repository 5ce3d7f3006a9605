package domain

import (
	"strings"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeTheme turns a theme label or identifier into its canonical
// identifier: lowercase, whitespace runs collapsed to a single hyphen.
// "Community Service" and "community-service" both become "community-service".
func NormalizeTheme(theme string) string {
	return strings.Join(strings.Fields(strings.ToLower(theme)), "-")
}
