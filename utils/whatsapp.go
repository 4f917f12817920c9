package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDateES renders a date the way the invitations do: "16 de septiembre de 2025".
func FormatDateES(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// GenerateWhatsAppMessage builds the share message handed to the admin after
// creating an invitation. The greeting uses the full name for couples
// ("Ana y Luis") and the first name otherwise.
func GenerateWhatsAppMessage(guestName, invitationCode string, maxGuests int, coupleNames, siteURL string, deadline time.Time) string {
	invitationURL := fmt.Sprintf("%s/?invitation=%s", siteURL, invitationCode)

	firstName := guestName
	if idx := strings.IndexByte(guestName, ' '); idx > 0 {
		firstName = guestName[:idx]
	}

	isCouple := strings.Contains(guestName, " y ") || strings.Contains(guestName, " & ")
	greeting := fmt.Sprintf("Hola %s ✨", firstName)
	if isCouple {
		greeting = fmt.Sprintf("Hola %s ✨", guestName)
	}

	persons := "personas"
	if maxGuests == 1 {
		persons = "persona"
	}

	return fmt.Sprintf(`%s

*%s* 💍

_"El amor se celebra en los pequeños detalles y en la compañía de quienes más amamos."_

Con muchísima ilusión, queremos compartir este día tan especial a tu lado.
Será una noche para recordar, llena de amor, alegría y momentos inolvidables.

Para que todos puedan disfrutar con tranquilidad:
*La celebración será exclusivamente para adultos. NO NIÑOS* 🚫

👗 *Código de vestimenta:* Formal y elegante — *COLOR NEGRO* 🖤

¡Gracias por acompañarnos y ser parte de nuestra historia!

*Invitación para:* %s
*Válida para:* %d %s

%s

_Por favor, confirma tu asistencia antes del %s_`,
		greeting, coupleNames, guestName, maxGuests, persons, invitationURL, FormatDateES(deadline))
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// GenerateWhatsAppLink wraps the message in a wa.me link. With a phone number
// it opens the chat directly; without one WhatsApp asks for a contact.
func GenerateWhatsAppLink(message, phoneNumber string) string {
	encoded := url.QueryEscape(message)
	if phoneNumber != "" {
		return fmt.Sprintf("https://wa.me/%s?text=%s", nonDigits.ReplaceAllString(phoneNumber, ""), encoded)
	}
	return fmt.Sprintf("https://wa.me/?text=%s", encoded)
}
