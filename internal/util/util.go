// Package util holds small helpers shared across layers.
package util

import (
	"fmt"
	"strings"
	"time"
)

const tokenPrefixLen = 12

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TokenPrefix returns the first characters of a push token, safe to log and audit.
func TokenPrefix(token string) string {
	if len(token) <= tokenPrefixLen {
		return token
	}

	return token[:tokenPrefixLen]
}

// NilIfEmpty returns nil for an empty or blank string and a pointer to the trimmed value otherwise.
func NilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}
