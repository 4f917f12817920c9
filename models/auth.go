package models

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code"`
}
