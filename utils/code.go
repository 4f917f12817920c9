package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvitationCode builds an 8-character shareable code from a guest
// name: the first two letters of the name uppercased (padded with 'X' when
// the name is too short), four random alphanumerics and two random digits.
// Example: "Juan Pérez" -> "JU7K9X42".
//
// Uniqueness is not checked here; the UNIQUE constraint on invitation_code
// rejects the insert on the rare collision.
func GenerateInvitationCode(guestName string) (string, error) {
	var letters strings.Builder
	for _, r := range guestName {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters.WriteRune(unicode.ToUpper(r))
			if letters.Len() == 2 {
				break
			}
		}
	}
	prefix := letters.String()
	for len(prefix) < 2 {
		prefix += "X"
	}

	random := make([]byte, 4)
	for i := range random {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate invitation code: %w", err)
		}
		random[i] = codeAlphabet[n.Int64()]
	}

	// Two digits between 10 and 99.
	n, err := rand.Int(rand.Reader, big.NewInt(90))
	if err != nil {
		return "", fmt.Errorf("failed to generate invitation code: %w", err)
	}
	digits := n.Int64() + 10

	return fmt.Sprintf("%s%s%d", prefix, random, digits), nil
}
