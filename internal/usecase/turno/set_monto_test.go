package turno

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

func TestSetMonto_OK(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByOwner", mock.Anything, uint(5)).Return(&models.Taller{ID: 1, UsuarioID: 5}, nil)
	repo.On("GetTurnoForTaller", mock.Anything, uint(30), uint(1)).Return(&models.Turno{ID: 30, TallerID: 1}, nil)
	repo.On("UpdateTurno", mock.Anything, mock.AnythingOfType("*models.Turno")).Return(nil)

	uc := NewSetMonto(repo)
	turno, err := uc.Execute(context.Background(), 5, 30, 12500)

	require.NoError(t, err)
	require.NotNil(t, turno.MontoAsignado)
	assert.Equal(t, 12500.0, *turno.MontoAsignado)
	repo.AssertExpectations(t)
}

func TestSetMonto_Negativo(t *testing.T) {
	repo := new(mockRepo)

	uc := NewSetMonto(repo)
	_, err := uc.Execute(context.Background(), 5, 30, -100)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAmount))
	repo.AssertNotCalled(t, "UpdateTurno")
}

func TestSetMonto_TurnoDeOtroTaller(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByOwner", mock.Anything, uint(5)).Return(&models.Taller{ID: 1, UsuarioID: 5}, nil)
	repo.On("GetTurnoForTaller", mock.Anything, uint(30), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	uc := NewSetMonto(repo)
	_, err := uc.Execute(context.Background(), 5, 30, 12500)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTurnoNotFound))
}

func TestSetMonto_CeroEsValido(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByOwner", mock.Anything, uint(5)).Return(&models.Taller{ID: 1, UsuarioID: 5}, nil)
	repo.On("GetTurnoForTaller", mock.Anything, uint(30), uint(1)).Return(&models.Turno{ID: 30, TallerID: 1}, nil)
	repo.On("UpdateTurno", mock.Anything, mock.AnythingOfType("*models.Turno")).Return(nil)

	uc := NewSetMonto(repo)
	turno, err := uc.Execute(context.Background(), 5, 30, 0)

	require.NoError(t, err)
	require.NotNil(t, turno.MontoAsignado)
	assert.Equal(t, 0.0, *turno.MontoAsignado)
}
