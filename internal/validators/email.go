package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid corta registros con dominios inexistentes antes de
// mandar la confirmación de reserva: alcanza un MX o, como fallback, un
// registro A/AAAA. Sin red el lookup falla y el registro se rechaza.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
