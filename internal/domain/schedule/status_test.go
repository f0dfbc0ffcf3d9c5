package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

func TestEstadoActivo(t *testing.T) {
	assert.True(t, EstadoPendiente.Activo())
	assert.True(t, EstadoConfirmado.Activo())
	assert.False(t, EstadoCancelado.Activo())
}

func TestCancel_TurnoPendiente(t *testing.T) {
	turno := &models.Turno{Estado: string(EstadoPendiente)}
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	err := Cancel(turno, now)

	require.NoError(t, err)
	assert.Equal(t, string(EstadoCancelado), turno.Estado)
	require.NotNil(t, turno.CanceladoEn)
	assert.Equal(t, now, *turno.CanceladoEn)
}

func TestCancel_YaCancelado(t *testing.T) {
	turno := &models.Turno{Estado: string(EstadoCancelado)}

	err := Cancel(turno, time.Now())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	assert.Nil(t, turno.CanceladoEn)
}
