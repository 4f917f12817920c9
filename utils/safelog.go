package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
)

// IsProduction determines whether guest data is masked in logs.
var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production" ||
	os.Getenv("ENV") == "production"

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	codeRegex  = regexp.MustCompile(`\b[A-Z]{2}[A-Z0-9]{4}\d{2}\b`)
	uuidRegex  = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString masks emails, invitation codes and UUIDs in production logs.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := emailRegex.ReplaceAllString(input, "***@***.***")
	result = codeRegex.ReplaceAllString(result, "********")
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})
	return result
}

// MaskCode masks an invitation code, keeping the name prefix for correlation.
func MaskCode(code string) string {
	if !IsProduction || len(code) < 2 {
		return code
	}
	return code[:2] + "******"
}

// MaskID shortens a UUID in production logs.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// SafeLog logs a message with guest data masked.
func SafeLog(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// LogRSVPAction logs an RSVP mutation without exposing the guest.
func LogRSVPAction(action, rsvpID, invitationID string) {
	log.Printf("[RSVP] %s - RSVP: %s Invitation: %s", action, MaskID(rsvpID), MaskID(invitationID))
}

// LogAuthAction logs an admin auth attempt.
func LogAuthAction(action string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	log.Printf("[Auth] %s - Status: %s", action, status)
}
