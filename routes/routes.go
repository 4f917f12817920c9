package routes

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/config"
	"github.com/sofibayo/wedding-api/handlers"
	"github.com/sofibayo/wedding-api/middleware"
)

// SetupPublicRoutes sets up the invitation lookup endpoints consumed by the
// RSVP form and the access gate.
func SetupPublicRoutes(rg *gin.RouterGroup, db *sql.DB) {
	invitationHandler := &handlers.InvitationHandler{DB: db}

	rg.GET("/invitations/:code", invitationHandler.GetInvitation)
	rg.GET("/invitations/validate/:code", invitationHandler.ValidateInvitation)
}

// SetupRSVPRoutes sets up the public RSVP submission endpoints.
func SetupRSVPRoutes(rg *gin.RouterGroup, db *sql.DB, wedding config.WeddingConfig, ws *handlers.WSHandler) {
	rsvpHandler := &handlers.RSVPHandler{DB: db, Wedding: wedding, WS: ws}

	rg.POST("/rsvp", rsvpHandler.CreateRSVP)
	rg.PUT("/rsvp/:id", rsvpHandler.UpdateRSVP)
	rg.DELETE("/rsvp/:id", rsvpHandler.DeleteRSVP)
}

// SetupAdminRoutes sets up admin auth plus the protected panel API.
func SetupAdminRoutes(rg *gin.RouterGroup, db *sql.DB, wedding config.WeddingConfig, ws *handlers.WSHandler) {
	authHandler := &handlers.AuthHandler{}
	adminHandler := &handlers.AdminHandler{DB: db, Wedding: wedding, WS: ws}

	admin := rg.Group("/admin")

	// Strict limiter on login so the shared secret cannot be brute-forced.
	admin.POST("/login", middleware.NewRateLimiter(5, time.Minute), authHandler.Login)
	admin.POST("/logout", authHandler.Logout)

	protected := admin.Group("/")
	protected.Use(middleware.AdminAuthRequired())
	{
		protected.GET("/invitations", adminHandler.ListInvitations)
		protected.POST("/invitations", adminHandler.CreateInvitation)
		protected.DELETE("/invitations/:id", adminHandler.DeleteInvitation)
		protected.GET("/rsvps", adminHandler.ListRSVPs)
		protected.DELETE("/rsvps/:id", adminHandler.DeleteRSVP)
		protected.GET("/stats", adminHandler.Stats)
		protected.GET("/ws", ws.HandleWS)
		protected.POST("/2fa/provision", authHandler.ProvisionTOTP)
	}
}

// SetupPageRoutes sets up the gated HTML pages.
func SetupPageRoutes(router *gin.Engine, db *sql.DB, wedding config.WeddingConfig) {
	pageHandler := &handlers.PageHandler{Wedding: wedding}

	gated := router.Group("/")
	gated.Use(middleware.InvitationGate(middleware.DBCodeValidator(db)))
	{
		gated.GET("/", pageHandler.Home)
		gated.GET("/no-invitation", pageHandler.NoInvitation)
	}

	adminPages := router.Group("/admin")
	adminPages.Use(middleware.AdminPageGate("/admin/login"))
	{
		adminPages.GET("/login", pageHandler.AdminLogin)
		adminPages.GET("/dashboard", pageHandler.AdminDashboard)
	}
}
