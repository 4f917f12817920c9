package utils

import (
	"testing"
)

func TestCheckAdminPasswordPlaintext(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "super-secret")

	if !CheckAdminPassword("super-secret") {
		t.Error("expected matching password to be accepted")
	}
	if CheckAdminPassword("wrong") {
		t.Error("expected wrong password to be rejected")
	}
	if CheckAdminPassword("") {
		t.Error("expected empty password to be rejected")
	}
}

func TestCheckAdminPasswordNoSecretConfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "")

	if CheckAdminPassword("") {
		t.Error("expected login to be impossible without a configured secret")
	}
	if CheckAdminPassword("anything") {
		t.Error("expected login to be impossible without a configured secret")
	}
}

func TestCheckAdminPasswordHashTakesPrecedence(t *testing.T) {
	hash, err := HashPassword("hashed-secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("ADMIN_PASSWORD", "plaintext-secret")

	if !CheckAdminPassword("hashed-secret") {
		t.Error("expected hash match to be accepted")
	}
	if CheckAdminPassword("plaintext-secret") {
		t.Error("expected plaintext fallback to be ignored when a hash is set")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hello")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !CheckPassword("hello", hash) {
		t.Error("expected password to match its hash")
	}
	if CheckPassword("other", hash) {
		t.Error("expected mismatched password to be rejected")
	}
}

func TestAdminTOTPEnabled(t *testing.T) {
	t.Setenv("ADMIN_TOTP_SECRET", "")
	if AdminTOTPEnabled() {
		t.Error("expected TOTP to be disabled without a secret")
	}

	t.Setenv("ADMIN_TOTP_SECRET", "JBSWY3DPEHPK3PXP")
	if !AdminTOTPEnabled() {
		t.Error("expected TOTP to be enabled with a secret")
	}
}
