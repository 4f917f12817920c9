package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/models"
)

type InvitationHandler struct {
	DB *sql.DB
}

// GetInvitation returns the invitation for a code together with its RSVP,
// if one was already submitted. The RSVP form uses this to prefill edits.
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	code := c.Param("code")

	var inv models.Invitation
	err := h.DB.QueryRow(`
		SELECT id, invitation_code, guest_name, max_guests, is_used, created_at, updated_at
		FROM invitations
		WHERE invitation_code = $1
	`, code).Scan(&inv.ID, &inv.InvitationCode, &inv.GuestName, &inv.MaxGuests, &inv.IsUsed, &inv.CreatedAt, &inv.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitación no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar invitación"})
		return
	}

	var rsvp models.RSVP
	var dietary, message sql.NullString
	err = h.DB.QueryRow(`
		SELECT id, invitation_id, name, attendance, guests_count, dietary_restrictions, message, created_at, updated_at
		FROM rsvps
		WHERE invitation_id = $1
	`, inv.ID).Scan(&rsvp.ID, &rsvp.InvitationID, &rsvp.Name, &rsvp.Attendance, &rsvp.GuestsCount, &dietary, &message, &rsvp.CreatedAt, &rsvp.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, models.InvitationLookupResponse{Invitation: inv})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar confirmación"})
		return
	}

	if dietary.Valid {
		rsvp.DietaryRestrictions = &dietary.String
	}
	if message.Valid {
		rsvp.Message = &message.String
	}

	c.JSON(http.StatusOK, models.InvitationLookupResponse{
		Invitation:   inv,
		HasResponded: true,
		RSVP:         &rsvp,
	})
}

// ValidateInvitation reports whether a code exists. Always answers 200; the
// access gate treats anything but {"valid": true} as invalid.
func (h *InvitationHandler) ValidateInvitation(c *gin.Context) {
	code := c.Param("code")

	var exists bool
	err := h.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM invitations WHERE invitation_code = $1)
	`, code).Scan(&exists)

	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": exists})
}
