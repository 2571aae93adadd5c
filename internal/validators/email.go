package validators

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailFormatValid faz validação sintática barata, sem consulta DNS;
// e-mail de cliente é opcional e não pode travar a reserva.
func IsEmailFormatValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}
