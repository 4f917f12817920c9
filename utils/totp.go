package utils

import (
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// GenerateTOTPSecret creates a new secret for the admin second factor and
// returns the secret, the otpauth provisioning URL and the key for QR
// rendering.
func GenerateTOTPSecret() (string, string, *otp.Key, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Boda Sofía & Oswaldo",
		AccountName: "admin",
	})
	if err != nil {
		return "", "", nil, err
	}

	return key.Secret(), key.URL(), key, nil
}

func VerifyTOTP(secret, code string) bool {
	return totp.Validate(code, secret)
}
