package models

import (
	"time"
)

type Invitation struct {
	ID             string    `json:"id"`
	InvitationCode string    `json:"invitation_code"`
	GuestName      string    `json:"guest_name"`
	MaxGuests      int       `json:"max_guests"`
	IsUsed         bool      `json:"is_used"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateInvitationRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	MaxGuests int    `json:"max_guests" binding:"required,min=1,max=20"`
}

// InvitationLookupResponse is the payload for GET /api/invitations/:code.
type InvitationLookupResponse struct {
	Invitation   Invitation `json:"invitation"`
	HasResponded bool       `json:"hasResponded"`
	RSVP         *RSVP      `json:"rsvp,omitempty"`
}

// InvitationWithStatus is an invitation row joined with its RSVP state for
// the admin list.
type InvitationWithStatus struct {
	Invitation
	HasResponded bool `json:"hasResponded"`
}
