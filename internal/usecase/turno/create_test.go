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
)

func validInput() CreateTurnoInput {
	return CreateTurnoInput{
		ClienteID: 7,
		TallerID:  1,
		Fecha:     "2025-06-15",
		Hora:      10,
	}
}

func TestCreateTurno_OK(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByID", mock.Anything, uint(1)).Return(tallerNueveADoce(), nil)
	repo.On("CreateTurno", mock.Anything, mock.AnythingOfType("*models.Turno")).Return(nil)

	uc := NewCreateTurno(repo, nil, nil)
	turno, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, uint(7), turno.ClienteID)
	assert.Equal(t, uint(1), turno.TallerID)
	assert.Equal(t, "2025-06-15", turno.Fecha)
	assert.Equal(t, 10, turno.Hora)
	assert.Equal(t, string(domain.EstadoPendiente), turno.Estado)
	repo.AssertExpectations(t)
}

func TestCreateTurno_FueraDeHorario(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByID", mock.Anything, uint(1)).Return(tallerNueveADoce(), nil)

	in := validInput()
	in.Hora = 15

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))
	repo.AssertNotCalled(t, "CreateTurno")
}

func TestCreateTurno_HoraDeCierre(t *testing.T) {
	// el cierre (fin de ventana) no es reservable
	repo := new(mockRepo)
	repo.On("GetTallerByID", mock.Anything, uint(1)).Return(tallerNueveADoce(), nil)

	in := validInput()
	in.Hora = 12

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))
}

func TestCreateTurno_HoraInvalida(t *testing.T) {
	repo := new(mockRepo)

	in := validInput()
	in.Hora = 24

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidHour))
	repo.AssertNotCalled(t, "GetTallerByID")
}

func TestCreateTurno_FechaInvalida(t *testing.T) {
	repo := new(mockRepo)

	in := validInput()
	in.Fecha = "2025-6-15"

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
}

func TestCreateTurno_SlotOcupado(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByID", mock.Anything, uint(1)).Return(tallerNueveADoce(), nil)
	repo.On("CreateTurno", mock.Anything, mock.AnythingOfType("*models.Turno")).
		Return(httperr.ErrBusiness(httperr.CodeSlotConflict))

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestCreateTurno_TallerInexistente(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTallerByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	uc := NewCreateTurno(repo, nil, nil)
	_, err := uc.Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTallerNotFound))
}
