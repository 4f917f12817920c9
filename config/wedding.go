package config

import (
	"os"
	"time"
)

// WeddingConfig holds the event-level settings shared by the share-message
// builder and the RSVP deadline checks.
type WeddingConfig struct {
	CoupleNames string
	SiteURL     string
	// Deadline is the last day (inclusive) on which respondents may edit or
	// delete their confirmation.
	Deadline time.Time
}

const defaultDeadline = "2025-09-16"

func LoadWeddingConfig() WeddingConfig {
	coupleNames := os.Getenv("COUPLE_NAMES")
	if coupleNames == "" {
		coupleNames = "Sofía & Oswaldo"
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	deadlineStr := os.Getenv("RSVP_DEADLINE")
	if deadlineStr == "" {
		deadlineStr = defaultDeadline
	}
	deadline, err := time.Parse("2006-01-02", deadlineStr)
	if err != nil {
		deadline, _ = time.Parse("2006-01-02", defaultDeadline)
	}

	return WeddingConfig{
		CoupleNames: coupleNames,
		SiteURL:     siteURL,
		Deadline:    deadline,
	}
}

// BeforeDeadline reports whether now is still on or before the deadline day.
func (w WeddingConfig) BeforeDeadline(now time.Time) bool {
	// The deadline day itself still counts.
	cutoff := w.Deadline.Add(24 * time.Hour)
	return now.Before(cutoff)
}
