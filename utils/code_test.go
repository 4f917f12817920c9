package utils

import (
	"regexp"
	"strings"
	"testing"
)

var codePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{4}[0-9]{2}$`)

func TestGenerateInvitationCode(t *testing.T) {
	tt := []struct {
		name       string
		guestName  string
		wantPrefix string
	}{
		{name: "plain name", guestName: "Juan Pérez", wantPrefix: "JU"},
		{name: "lowercase name", guestName: "sofía", wantPrefix: "SO"},
		{name: "leading accent skipped", guestName: "Álvaro", wantPrefix: "LV"},
		{name: "single letter padded", guestName: "A", wantPrefix: "AX"},
		{name: "no letters padded", guestName: "12 34", wantPrefix: "XX"},
		{name: "empty name padded", guestName: "", wantPrefix: "XX"},
		{name: "couple name", guestName: "Ana y Luis", wantPrefix: "AN"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			code, err := GenerateInvitationCode(tc.guestName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(code) != 8 {
				t.Fatalf("expected 8 characters, got %d (%q)", len(code), code)
			}
			if !strings.HasPrefix(code, tc.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tc.wantPrefix, code)
			}
			if !codePattern.MatchString(code) {
				t.Errorf("code %q does not match pattern %s", code, codePattern)
			}
		})
	}
}

func TestGenerateInvitationCodeDigitsRange(t *testing.T) {
	// The final two characters are always a number between 10 and 99.
	for i := 0; i < 200; i++ {
		code, err := GenerateInvitationCode("Juan Pérez")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		suffix := code[6:]
		if suffix[0] < '1' || suffix[0] > '9' || suffix[1] < '0' || suffix[1] > '9' {
			t.Fatalf("suffix %q outside 10..99 in code %q", suffix, code)
		}
	}
}

func TestGenerateInvitationCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateInvitationCode("Juan Pérez")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected random variation across generated codes")
	}
}
