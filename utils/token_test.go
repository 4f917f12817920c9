package utils

import (
	"strings"
	"testing"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if err := ValidateAdminToken(token); err != nil {
		t.Fatalf("expected token to validate: %v", err)
	}
}

func TestValidateAdminTokenRejectsTampered(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %s", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if err := ValidateAdminToken(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestValidateAdminTokenRejectsOtherSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "first-secret")
	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Setenv("SESSION_SECRET", "second-secret")
	if err := ValidateAdminToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	if err := ValidateAdminToken("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
