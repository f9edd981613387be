package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BOOKING_RATE_LIMIT", "")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr = %s, want :8080", cfg.Addr())
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("JWTTTL = %s, want 24h", cfg.JWTTTL)
	}
	if cfg.BookingRateLimit != 20 {
		t.Fatalf("BookingRateLimit = %d, want 20", cfg.BookingRateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("BOOKING_RATE_LIMIT", "5")
	t.Setenv("BOOKING_RATE_WINDOW", "not-a-duration")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("Addr = %s, want :9090", cfg.Addr())
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Fatalf("JWTTTL = %s, want 2h", cfg.JWTTTL)
	}
	if cfg.BookingRateLimit != 5 {
		t.Fatalf("BookingRateLimit = %d, want 5", cfg.BookingRateLimit)
	}
	if cfg.BookingRateWindow != time.Minute {
		t.Fatalf("BookingRateWindow = %s, want fallback 1m", cfg.BookingRateWindow)
	}
}
