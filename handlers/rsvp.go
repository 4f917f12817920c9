package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/sofibayo/wedding-api/config"
	"github.com/sofibayo/wedding-api/models"
	"github.com/sofibayo/wedding-api/utils"
)

const uniqueViolation = "23505"

type RSVPHandler struct {
	DB      *sql.DB
	Wedding config.WeddingConfig
	WS      *WSHandler
}

// guestsFor forces the stored party size to 0 for declines, whatever the
// client sent.
func guestsFor(attendance string, requested int) int {
	if attendance != models.AttendanceYes {
		return 0
	}
	return requested
}

// CreateRSVP registers the single response allowed per invitation.
//
// Checks run in order, each with its own failure: the code must exist, the
// invitation must not have been answered yet, and an attending party must
// fit within max_guests. The RSVP insert and the is_used flip commit in one
// transaction so a crash cannot leave them disagreeing.
func (h *RSVPHandler) CreateRSVP(c *gin.Context) {
	var req models.RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var inv models.Invitation
	err := h.DB.QueryRow(`
		SELECT id, max_guests FROM invitations WHERE invitation_code = $1
	`, req.InvitationCode).Scan(&inv.ID, &inv.MaxGuests)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitación inválida"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}

	var alreadyResponded bool
	err = h.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM rsvps WHERE invitation_id = $1)
	`, inv.ID).Scan(&alreadyResponded)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}
	if alreadyResponded {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Esta invitación ya fue confirmada"})
		return
	}

	if req.Attendance == models.AttendanceYes && req.GuestsCount > inv.MaxGuests {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("El máximo de invitados para esta invitación es %d", inv.MaxGuests),
		})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}
	defer tx.Rollback()

	var rsvp models.RSVP
	var dietary, message sql.NullString
	err = tx.QueryRow(`
		INSERT INTO rsvps (invitation_id, name, attendance, guests_count, dietary_restrictions, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, invitation_id, name, attendance, guests_count, dietary_restrictions, message, created_at, updated_at
	`, inv.ID, req.Name, req.Attendance, guestsFor(req.Attendance, req.GuestsCount), req.DietaryRestrictions, req.Message).
		Scan(&rsvp.ID, &rsvp.InvitationID, &rsvp.Name, &rsvp.Attendance, &rsvp.GuestsCount, &dietary, &message, &rsvp.CreatedAt, &rsvp.UpdatedAt)

	if err != nil {
		// A concurrent submission for the same invitation loses the race on
		// the unique constraint; answer the same as the sequential case.
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Esta invitación ya fue confirmada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}

	if _, err := tx.Exec(`
		UPDATE invitations SET is_used = TRUE, updated_at = NOW() WHERE id = $1
	`, inv.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar confirmación"})
		return
	}

	if dietary.Valid {
		rsvp.DietaryRestrictions = &dietary.String
	}
	if message.Valid {
		rsvp.Message = &message.String
	}

	utils.LogRSVPAction("created", rsvp.ID, rsvp.InvitationID)
	if h.WS != nil {
		h.WS.BroadcastRSVPEvent("rsvp_created", rsvp.InvitationID, rsvp.Attendance, rsvp.GuestsCount)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": rsvp})
}

// UpdateRSVP overwrites a confirmation's mutable fields, subject to the
// global deadline and the parent invitation's capacity.
func (h *RSVPHandler) UpdateRSVP(c *gin.Context) {
	id := c.Param("id")

	if !h.Wedding.BeforeDeadline(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La fecha límite para modificar confirmaciones ha pasado"})
		return
	}

	var req models.RSVPUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var maxGuests int
	err := h.DB.QueryRow(`
		SELECT i.max_guests
		FROM rsvps r
		INNER JOIN invitations i ON i.id = r.invitation_id
		WHERE r.id = $1
	`, id).Scan(&maxGuests)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Confirmación no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar confirmación"})
		return
	}

	if req.Attendance == models.AttendanceYes && req.GuestsCount > maxGuests {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("El máximo de invitados para esta invitación es %d", maxGuests),
		})
		return
	}

	var rsvp models.RSVP
	var dietary, message sql.NullString
	err = h.DB.QueryRow(`
		UPDATE rsvps
		SET name = $1, attendance = $2, guests_count = $3, dietary_restrictions = $4, message = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, invitation_id, name, attendance, guests_count, dietary_restrictions, message, created_at, updated_at
	`, req.Name, req.Attendance, guestsFor(req.Attendance, req.GuestsCount), req.DietaryRestrictions, req.Message, id).
		Scan(&rsvp.ID, &rsvp.InvitationID, &rsvp.Name, &rsvp.Attendance, &rsvp.GuestsCount, &dietary, &message, &rsvp.CreatedAt, &rsvp.UpdatedAt)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar confirmación"})
		return
	}

	if dietary.Valid {
		rsvp.DietaryRestrictions = &dietary.String
	}
	if message.Valid {
		rsvp.Message = &message.String
	}

	utils.LogRSVPAction("updated", rsvp.ID, rsvp.InvitationID)
	if h.WS != nil {
		h.WS.BroadcastRSVPEvent("rsvp_updated", rsvp.InvitationID, rsvp.Attendance, rsvp.GuestsCount)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": rsvp})
}

// DeleteRSVP removes a confirmation and reopens its invitation, both in the
// same transaction. The guest may then submit again before the deadline.
func (h *RSVPHandler) DeleteRSVP(c *gin.Context) {
	id := c.Param("id")

	if !h.Wedding.BeforeDeadline(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La fecha límite para modificar confirmaciones ha pasado"})
		return
	}

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

	if _, err := tx.Exec(`
		UPDATE invitations SET is_used = FALSE, updated_at = NOW() WHERE id = $1
	`, invitationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar confirmación"})
		return
	}

	utils.LogRSVPAction("deleted", id, invitationID)
	if h.WS != nil {
		h.WS.BroadcastRSVPEvent("rsvp_deleted", invitationID, "", 0)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
