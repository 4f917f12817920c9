package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/config"
)

// PageHandler serves the thin HTML shells behind the gates. The invitation
// gate has already validated the code by the time Home runs.
type PageHandler struct {
	Wedding config.WeddingConfig
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"couple": h.Wedding.CoupleNames,
		"code":   c.Query("invitation"),
	})
}

func (h *PageHandler) NoInvitation(c *gin.Context) {
	c.HTML(http.StatusOK, "no-invitation.html", gin.H{
		"couple": h.Wedding.CoupleNames,
	})
}

func (h *PageHandler) AdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", nil)
}

func (h *PageHandler) AdminDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"couple": h.Wedding.CoupleNames,
	})
}
