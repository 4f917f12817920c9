package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateWhatsAppMessage(t *testing.T) {
	deadline := time.Date(2025, time.September, 16, 0, 0, 0, 0, time.UTC)

	tt := []struct {
		name         string
		guestName    string
		maxGuests    int
		wantGreeting string
		wantValidity string
	}{
		{
			name:         "single guest greeted by first name",
			guestName:    "Juan Pérez",
			maxGuests:    1,
			wantGreeting: "Hola Juan ✨",
			wantValidity: "*Válida para:* 1 persona",
		},
		{
			name:         "couple greeted by full name",
			guestName:    "Ana y Luis",
			maxGuests:    2,
			wantGreeting: "Hola Ana y Luis ✨",
			wantValidity: "*Válida para:* 2 personas",
		},
		{
			name:         "ampersand couple",
			guestName:    "Ana & Luis",
			maxGuests:    4,
			wantGreeting: "Hola Ana & Luis ✨",
			wantValidity: "*Válida para:* 4 personas",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			msg := GenerateWhatsAppMessage(tc.guestName, "JU7K9X42", tc.maxGuests,
				"Sofía & Oswaldo", "https://example.com", deadline)

			for _, want := range []string{
				tc.wantGreeting,
				tc.wantValidity,
				"*Invitación para:* " + tc.guestName,
				"https://example.com/?invitation=JU7K9X42",
				"16 de septiembre de 2025",
				"*Sofía & Oswaldo* 💍",
			} {
				if !strings.Contains(msg, want) {
					t.Errorf("message missing %q:\n%s", want, msg)
				}
			}
		})
	}
}

func TestGenerateWhatsAppLink(t *testing.T) {
	msg := "Hola Juan"

	link := GenerateWhatsAppLink(msg, "")
	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Errorf("unexpected link without phone: %s", link)
	}
	if !strings.Contains(link, "Hola+Juan") {
		t.Errorf("message not escaped in link: %s", link)
	}

	link = GenerateWhatsAppLink(msg, "+52 (55) 1234-5678")
	if !strings.HasPrefix(link, "https://wa.me/525512345678?text=") {
		t.Errorf("phone number not cleaned in link: %s", link)
	}
}

func TestFormatDateES(t *testing.T) {
	got := FormatDateES(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC))
	if got != "14 de junio de 2025" {
		t.Errorf("expected %q, got %q", "14 de junio de 2025", got)
	}
}
