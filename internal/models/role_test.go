package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"cliente", "taller", "admin"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}
}

func TestParseRole_Desconocido(t *testing.T) {
	for _, s := range []string{"", "Cliente", "superadmin", "2"} {
		_, err := ParseRole(s)
		assert.Error(t, err, "rol %q no debería parsear", s)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleTaller.Valid())
	assert.False(t, Role("root").Valid())
}
