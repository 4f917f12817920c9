package utils

import (
	"crypto/subtle"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckAdminPassword compares a submitted password against the configured
// admin secret. ADMIN_PASSWORD_HASH (bcrypt) takes precedence over the
// plaintext ADMIN_PASSWORD fallback, which is compared in constant time.
func CheckAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	secret := os.Getenv("ADMIN_PASSWORD")
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(secret)) == 1
}

// HashPassword is a helper for generating ADMIN_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword verifies a password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AdminTOTPEnabled reports whether a TOTP second factor is configured.
func AdminTOTPEnabled() bool {
	return strings.TrimSpace(os.Getenv("ADMIN_TOTP_SECRET")) != ""
}
