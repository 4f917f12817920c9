package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS invitations (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			invitation_code VARCHAR(8) UNIQUE NOT NULL,
			guest_name VARCHAR(255) NOT NULL,
			max_guests INTEGER NOT NULL CHECK (max_guests BETWEEN 1 AND 20),
			is_used BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		// UNIQUE(invitation_id) keeps concurrent submissions from producing
		// two RSVPs for one invitation.
		`CREATE TABLE IF NOT EXISTS rsvps (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			invitation_id UUID UNIQUE NOT NULL REFERENCES invitations(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			attendance VARCHAR(3) NOT NULL CHECK (attendance IN ('yes', 'no')),
			guests_count INTEGER NOT NULL DEFAULT 0 CHECK (guests_count >= 0),
			dietary_restrictions TEXT,
			message TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_invitations_code ON invitations(invitation_code)`,
		`CREATE INDEX IF NOT EXISTS idx_rsvps_invitation_id ON rsvps(invitation_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
