package auth

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("secret", time.Hour, timezone.Fixed(now))

	token, err := issuer.Issue("user-1", RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	p, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.ID != "user-1" || p.Role != RoleAdmin {
		t.Fatalf("principal = %+v", p)
	}
}

func TestTokenIssuer_RejectsExpiredAndForeignTokens(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("secret", time.Hour, timezone.Fixed(now))

	token, err := issuer.Issue("user-1", RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	later := NewTokenIssuer("secret", time.Hour, timezone.Fixed(now.Add(2*time.Hour)))
	if _, err := later.Parse(token); err != ErrInvalidToken {
		t.Fatalf("expired token: err = %v, want ErrInvalidToken", err)
	}

	other := NewTokenIssuer("other-secret", time.Hour, timezone.Fixed(now))
	if _, err := other.Parse(token); err != ErrInvalidToken {
		t.Fatalf("foreign token: err = %v, want ErrInvalidToken", err)
	}
}

func TestPrincipal_Capabilities(t *testing.T) {
	user := Principal{ID: "u1", Role: RoleUser}
	admin := Principal{ID: "a1", Role: RoleAdmin}

	if !user.Can(CapBookAppointments) || user.Can(CapManageAnyAppointment) {
		t.Fatalf("unexpected user capabilities")
	}
	if !admin.Can(CapManageAccounts) || !admin.Can(CapCompleteAppointments) {
		t.Fatalf("admin should hold every capability")
	}

	if !user.CanActOn("u1") || user.CanActOn("u2") {
		t.Fatalf("user ownership check wrong")
	}
	if !admin.CanActOn("u2") {
		t.Fatalf("admin should act on any owner")
	}
}
