package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
)

func TestAvailableSlots_VentanaLibre(t *testing.T) {
	slots, err := AvailableSlots(9, 12, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "10:00:00", "11:00:00"}, slots)
}

func TestAvailableSlots_HoraOcupada(t *testing.T) {
	slots, err := AvailableSlots(9, 12, []int{10})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "11:00:00"}, slots)
}

func TestAvailableSlots_TodoOcupado(t *testing.T) {
	slots, err := AvailableSlots(9, 11, []int{9, 10})

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_VentanaVacia(t *testing.T) {
	// inicio == fin: el taller no atiende ese día
	slots, err := AvailableSlots(10, 10, nil)

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_OcupadasFueraDeVentana(t *testing.T) {
	slots, err := AvailableSlots(9, 11, []int{7, 8, 23})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "10:00:00"}, slots)
}

func TestAvailableSlots_OcupadasDuplicadas(t *testing.T) {
	slots, err := AvailableSlots(9, 12, []int{10, 10, 10})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "11:00:00"}, slots)
}

func TestAvailableSlots_OrdenAscendenteSinDuplicados(t *testing.T) {
	slots, err := AvailableSlots(0, 23, []int{3, 17})

	require.NoError(t, err)
	seen := make(map[string]bool)
	prev := ""
	for _, s := range slots {
		assert.False(t, seen[s], "slot duplicado: %s", s)
		seen[s] = true
		assert.Greater(t, s, prev)
		prev = s
	}
}

func TestAvailableSlots_VentanaInvalida(t *testing.T) {
	cases := []struct {
		name   string
		inicio int
		fin    int
	}{
		{"inicio negativo", -1, 12},
		{"fin fuera de rango", 9, 24},
		{"inicio mayor que fin", 15, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AvailableSlots(tc.inicio, tc.fin, nil)

			require.Error(t, err)
			var be httperr.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, httperr.CodeInvalidHourRange, be.Code)
		})
	}
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "09:00:00", FormatHour(9))
	assert.Equal(t, "00:00:00", FormatHour(0))
	assert.Equal(t, "23:00:00", FormatHour(23))
}

func TestWithinWindow(t *testing.T) {
	assert.True(t, WithinWindow(9, 9, 18))
	assert.True(t, WithinWindow(17, 9, 18))
	assert.False(t, WithinWindow(18, 9, 18), "la hora de cierre no se reserva")
	assert.False(t, WithinWindow(8, 9, 18))
}
