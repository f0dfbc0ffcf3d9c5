package turno

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

func TestCancelTurno_OK(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTurnoForCliente", mock.Anything, uint(30), uint(7)).
		Return(&models.Turno{ID: 30, ClienteID: 7, Estado: string(domain.EstadoPendiente)}, nil)
	repo.On("UpdateTurno", mock.Anything, mock.AnythingOfType("*models.Turno")).Return(nil)

	uc := NewCancelTurno(repo, nil)
	turno, err := uc.Execute(context.Background(), 7, 30)

	require.NoError(t, err)
	assert.Equal(t, string(domain.EstadoCancelado), turno.Estado)
	assert.NotNil(t, turno.CanceladoEn)
	repo.AssertExpectations(t)
}

func TestCancelTurno_YaCancelado(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTurnoForCliente", mock.Anything, uint(30), uint(7)).
		Return(&models.Turno{ID: 30, ClienteID: 7, Estado: string(domain.EstadoCancelado)}, nil)

	uc := NewCancelTurno(repo, nil)
	_, err := uc.Execute(context.Background(), 7, 30)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	repo.AssertNotCalled(t, "UpdateTurno")
}

func TestCancelTurno_DeOtroCliente(t *testing.T) {
	// el scoping por cliente responde not found, nunca filtra existencia
	repo := new(mockRepo)
	repo.On("GetTurnoForCliente", mock.Anything, uint(30), uint(8)).
		Return(nil, gorm.ErrRecordNotFound)

	uc := NewCancelTurno(repo, nil)
	_, err := uc.Execute(context.Background(), 8, 30)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTurnoNotFound))
}
