package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/sofibayo/wedding-api/config"
	"github.com/sofibayo/wedding-api/models"
	"github.com/sofibayo/wedding-api/utils"
)

type AdminHandler struct {
	DB      *sql.DB
	Wedding config.WeddingConfig
	WS      *WSHandler
}

// CreateInvitation issues a personalized code for one invitee/household and
// returns the ready-to-send WhatsApp message alongside the record.
func (h *AdminHandler) CreateInvitation(c *gin.Context) {
	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := utils.GenerateInvitationCode(req.GuestName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear invitación"})
		return
	}

	var inv models.Invitation
	err = h.DB.QueryRow(`
		INSERT INTO invitations (invitation_code, guest_name, max_guests)
		VALUES ($1, $2, $3)
		RETURNING id, invitation_code, guest_name, max_guests, is_used, created_at, updated_at
	`, code, req.GuestName, req.MaxGuests).
		Scan(&inv.ID, &inv.InvitationCode, &inv.GuestName, &inv.MaxGuests, &inv.IsUsed, &inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		// A code collision trips the unique constraint; regenerating on the
		// next attempt is overwhelmingly likely to succeed.
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			c.JSON(http.StatusConflict, gin.H{"error": "Error al crear invitación, intenta de nuevo"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear invitación"})
		return
	}

	message := utils.GenerateWhatsAppMessage(inv.GuestName, inv.InvitationCode, inv.MaxGuests,
		h.Wedding.CoupleNames, h.Wedding.SiteURL, h.Wedding.Deadline)

	c.JSON(http.StatusCreated, gin.H{
		"invitation":       inv,
		"whatsapp_message": message,
		"whatsapp_link":    utils.GenerateWhatsAppLink(message, ""),
	})
}

// ListInvitations returns every invitation, newest first, with its RSVP state.
func (h *AdminHandler) ListInvitations(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT i.id, i.invitation_code, i.guest_name, i.max_guests, i.is_used, i.created_at, i.updated_at,
		       EXISTS(SELECT 1 FROM rsvps r WHERE r.invitation_id = i.id) AS has_responded
		FROM invitations i
		ORDER BY i.created_at DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar invitaciones"})
		return
	}
	defer rows.Close()

	invitations := []models.InvitationWithStatus{}
	for rows.Next() {
		var inv models.InvitationWithStatus
		if err := rows.Scan(&inv.ID, &inv.InvitationCode, &inv.GuestName, &inv.MaxGuests, &inv.IsUsed,
			&inv.CreatedAt, &inv.UpdatedAt, &inv.HasResponded); err != nil {
			continue
		}
		invitations = append(invitations, inv)
	}

	c.JSON(http.StatusOK, invitations)
}

// DeleteInvitation removes an invitation; the FK cascade takes any RSVP
// with it.
func (h *AdminHandler) DeleteInvitation(c *gin.Context) {
	id := c.Param("id")

	result, err := h.DB.Exec(`DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la invitación"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitación no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListRSVPs returns every confirmation joined with its invitation, newest
// first.
func (h *AdminHandler) ListRSVPs(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT r.id, r.invitation_id, r.name, r.attendance, r.guests_count, r.dietary_restrictions, r.message,
		       r.created_at, r.updated_at, i.guest_name, i.invitation_code, i.max_guests
		FROM rsvps r
		INNER JOIN invitations i ON i.id = r.invitation_id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar confirmaciones"})
		return
	}
	defer rows.Close()

	rsvps := []models.RSVPWithGuest{}
	for rows.Next() {
		var r models.RSVPWithGuest
		var dietary, message sql.NullString
		if err := rows.Scan(&r.ID, &r.InvitationID, &r.Name, &r.Attendance, &r.GuestsCount, &dietary, &message,
			&r.CreatedAt, &r.UpdatedAt, &r.GuestName, &r.InvitationCode, &r.MaxGuests); err != nil {
			continue
		}
		if dietary.Valid {
			r.DietaryRestrictions = &dietary.String
		}
		if message.Valid {
			r.Message = &message.String
		}
		rsvps = append(rsvps, r)
	}

	c.JSON(http.StatusOK, rsvps)
}

// DeleteRSVP is the admin-side deletion: no deadline check, but the parent
// invitation is reopened the same way.
func (h *AdminHandler) DeleteRSVP(c *gin.Context) {
	id := c.Param("id")

	var invitationID string
	err := h.DB.QueryRow(`SELECT invitation_id FROM rsvps WHERE id = $1`, id).Scan(&invitationID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Confirmación no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM rsvps WHERE id = $1`, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}
	if _, err := tx.Exec(`UPDATE invitations SET is_used = FALSE, updated_at = NOW() WHERE id = $1`, invitationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}
	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}

	utils.LogRSVPAction("deleted by admin", id, invitationID)
	if h.WS != nil {
		h.WS.BroadcastRSVPEvent("rsvp_deleted", invitationID, "", 0)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats summarizes the guest list for the dashboard header.
func (h *AdminHandler) Stats(c *gin.Context) {
	var stats struct {
		Invitations     int `json:"invitations"`
		InvitedSeats    int `json:"invited_seats"`
		Pending         int `json:"pending"`
		Confirmed       int `json:"confirmed"`
		Declined        int `json:"declined"`
		ConfirmedGuests int `json:"confirmed_guests"`
	}

	err := h.DB.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(max_guests), 0),
		       COUNT(*) FILTER (WHERE NOT is_used)
		FROM invitations
	`).Scan(&stats.Invitations, &stats.InvitedSeats, &stats.Pending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar estadísticas"})
		return
	}

	err = h.DB.QueryRow(`
		SELECT COUNT(*) FILTER (WHERE attendance = 'yes'),
		       COUNT(*) FILTER (WHERE attendance = 'no'),
		       COALESCE(SUM(guests_count) FILTER (WHERE attendance = 'yes'), 0)
		FROM rsvps
	`).Scan(&stats.Confirmed, &stats.Declined, &stats.ConfirmedGuests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar estadísticas"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
