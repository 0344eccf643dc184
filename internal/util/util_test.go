package util

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "already normal", in: "ana@example.com", expected: "ana@example.com"},
		{name: "mixed case", in: "Ana@Example.COM", expected: "ana@example.com"},
		{name: "surrounding space", in: "  ana@example.com\t", expected: "ana@example.com"},
		{name: "empty", in: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.in); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestTokenPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "short token kept", token: "abc", expected: "abc"},
		{name: "exact length", token: "abcdefghijkl", expected: "abcdefghijkl"},
		{name: "long token cut", token: "abcdefghijklmnopqrstuvwxyz", expected: "abcdefghijkl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TokenPrefix(tt.token); got != tt.expected {
				t.Fatalf("TokenPrefix(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestNilIfEmpty(t *testing.T) {
	t.Parallel()

	if NilIfEmpty("  ") != nil {
		t.Fatal("NilIfEmpty of blank string should be nil")
	}

	got := NilIfEmpty(" Pixel 8 ")
	if got == nil || *got != "Pixel 8" {
		t.Fatalf("NilIfEmpty trimmed value = %v, want Pixel 8", got)
	}

	if Deref(nil) != "" || Deref(got) != "Pixel 8" {
		t.Fatal("Deref returned unexpected value")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
