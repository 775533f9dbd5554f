package service

import "strings"

// NormalizeUID is the canonical form of a card UID: trimmed and uppercase.
// Readers report hex UIDs in whatever case their library prints.
func NormalizeUID(uid string) string {
	return strings.ToUpper(strings.TrimSpace(uid))
}
