package validators

import "strings"

// IsEmailValid checks the local@domain.tld shape without touching the
// network: exactly one "@", a non-empty local part, and a domain that
// contains at least one dot with text on both sides.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	local := email[:at]
	domain := email[at+1:]

	if strings.Contains(local, "@") || strings.ContainsAny(email, " \t") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return true
}
