package util

import (
	"testing"
	"time"
)

func TestRandomHex(t *testing.T) {
	t.Parallel()

	a, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex() error = %v", err)
	}
	b, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex() error = %v", err)
	}

	if len(a) != 64 {
		t.Fatalf("len(RandomHex(32)) = %d, want 64", len(a))
	}
	if a == b {
		t.Fatalf("RandomHex returned the same value twice")
	}
}

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := SHA256Hex("hello"); got != want {
		t.Fatalf("SHA256Hex(hello) = %s, want %s", got, want)
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 4.666666, want: 4.7},
		{in: 4.44, want: 4.4},
		{in: 5, want: 5},
	}

	for _, tt := range tests {
		if got := RoundTo(tt.in, 1); got != tt.want {
			t.Fatalf("RoundTo(%v, 1) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "whole minutes", duration: 10 * time.Minute, expected: "10 minutes"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "hours", duration: 90 * time.Minute, expected: "1h30m"},
		{name: "rounds to second", duration: 1500 * time.Millisecond, expected: "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%v) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
