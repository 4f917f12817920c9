package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_session"

// SessionDuration matches the 24h cookie lifetime.
const SessionDuration = 24 * time.Hour

func sessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Falling back keeps local dev working; production must set it.
		secret = os.Getenv("ADMIN_PASSWORD")
	}
	return []byte(secret)
}

// GenerateAdminToken mints the signed session token set after a successful
// admin login.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"jti": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(SessionDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ValidateAdminToken parses the session token and reports whether it is a
// valid, unexpired admin session.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid session claims")
	}
	if sub, _ := claims["sub"].(string); sub != "admin" {
		return errors.New("invalid session subject")
	}
	return nil
}
