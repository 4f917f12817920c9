package handlers

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/models"
	"github.com/sofibayo/wedding-api/utils"
)

type AuthHandler struct{}

// Login checks the shared admin secret (plus the TOTP code when configured)
// and sets the signed session cookie, HttpOnly and SameSite=Strict, valid
// for 24 hours.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.CheckAdminPassword(req.Password) {
		utils.LogAuthAction("admin login", false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	if utils.AdminTOTPEnabled() {
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "2FA code required", "requires_2fa": true})
			return
		}
		if !utils.VerifyTOTP(os.Getenv("ADMIN_TOTP_SECRET"), req.TOTPCode) {
			utils.LogAuthAction("admin login 2fa", false)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
			return
		}
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.setSessionCookie(c, token, int(utils.SessionDuration.Seconds()))
	utils.LogAuthAction("admin login", true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, value, maxAge, "/", "", secure, true)
}

// ProvisionTOTP generates a fresh TOTP secret for the admin, returning the
// secret, the otpauth URL and a QR image to scan. The operator copies the
// secret into ADMIN_TOTP_SECRET to turn the second factor on.
func (h *AuthHandler) ProvisionTOTP(c *gin.Context) {
	secret, url, key, err := utils.GenerateTOTPSecret()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate 2FA secret"})
		return
	}

	img, err := key.Image(200, 200)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"secret":  secret,
		"url":     url,
		"qr_png":  base64.StdEncoding.EncodeToString(buf.Bytes()),
		"message": "Set ADMIN_TOTP_SECRET to this secret to enable 2FA",
	})
}
