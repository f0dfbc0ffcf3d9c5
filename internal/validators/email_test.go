package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		email  string
		domain string
		ok     bool
	}{
		{"cliente@gmail.com", "gmail.com", true},
		{"a@b@dominio.com", "dominio.com", true},
		{"sin-arroba", "", false},
		{"termina-en@", "", false},
		{"@sin-local.com", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		domain, ok := emailDomain(tc.email)
		assert.Equal(t, tc.ok, ok, "email %q", tc.email)
		assert.Equal(t, tc.domain, domain, "email %q", tc.email)
	}
}

func TestIsEmailDomainValid_FormatoInvalido(t *testing.T) {
	// malformados se rechazan sin tocar la red
	assert.False(t, IsEmailDomainValid("sin-arroba"))
	assert.False(t, IsEmailDomainValid("termina-en@"))
	assert.False(t, IsEmailDomainValid(""))
}
