package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"err", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
		{"DEBUG", zerolog.DebugLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitAndL(t *testing.T) {
	Init("debug", false)
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}

	Init("warn", true)
	if L().GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", L().GetLevel())
	}
}

func TestL_NeverNil(t *testing.T) {
	base = zerolog.Logger{}
	if L() == nil {
		t.Fatalf("expected non-nil logger")
	}
	// Logging through an uninitialized logger must not panic.
	L().Info().Msg("noop")
}
