package models

import (
	"time"
)

const (
	AttendanceYes = "yes"
	AttendanceNo  = "no"
)

type RSVP struct {
	ID                  string    `json:"id"`
	InvitationID        string    `json:"invitation_id"`
	Name                string    `json:"name"`
	Attendance          string    `json:"attendance"`
	GuestsCount         int       `json:"guests_count"`
	DietaryRestrictions *string   `json:"dietary_restrictions"`
	Message             *string   `json:"message"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type RSVPRequest struct {
	InvitationCode      string  `json:"invitation_code" binding:"required"`
	Name                string  `json:"name" binding:"required"`
	Attendance          string  `json:"attendance" binding:"required,oneof=yes no"`
	GuestsCount         int     `json:"guests_count" binding:"min=0"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	Message             *string `json:"message"`
}

// RSVPUpdateRequest is the same shape minus the code; the RSVP id comes
// from the path.
type RSVPUpdateRequest struct {
	Name                string  `json:"name" binding:"required"`
	Attendance          string  `json:"attendance" binding:"required,oneof=yes no"`
	GuestsCount         int     `json:"guests_count" binding:"min=0"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	Message             *string `json:"message"`
}

// RSVPWithGuest is an RSVP row joined with its invitation for the admin list.
type RSVPWithGuest struct {
	RSVP
	GuestName      string `json:"guest_name"`
	InvitationCode string `json:"invitation_code"`
	MaxGuests      int    `json:"max_guests"`
}
