package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes RSVP events to connected admin dashboards so the guest
// list refreshes without polling.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Dashboard client disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades an authenticated dashboard request to a websocket.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

type rsvpEvent struct {
	Type         string `json:"type"`
	InvitationID string `json:"invitation_id"`
	Attendance   string `json:"attendance,omitempty"`
	GuestsCount  int    `json:"guests_count,omitempty"`
}

// BroadcastRSVPEvent signals a created/updated/deleted RSVP to every
// connected dashboard.
func (h *WSHandler) BroadcastRSVPEvent(eventType, invitationID, attendance string, guestsCount int) {
	msg, err := json.Marshal(rsvpEvent{
		Type:         eventType,
		InvitationID: invitationID,
		Attendance:   attendance,
		GuestsCount:  guestsCount,
	})
	if err != nil {
		return
	}

	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting RSVP event: %v", err)
	}
}
