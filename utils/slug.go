// utils/slug.go
package utils

import "strings"

// Slugify derives a taxonomy id from an admin-entered identifier or
// label: lowercased, spaces replaced with hyphens.
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
