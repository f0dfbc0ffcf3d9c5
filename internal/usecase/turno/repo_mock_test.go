package turno

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetTallerByID(ctx context.Context, id uint) (*models.Taller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Taller), args.Error(1)
}

func (m *mockRepo) GetTallerByOwner(ctx context.Context, usuarioID uint) (*models.Taller, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Taller), args.Error(1)
}

func (m *mockRepo) ListOccupiedHours(ctx context.Context, tallerID uint, fecha string) ([]int, error) {
	args := m.Called(ctx, tallerID, fecha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockRepo) CreateTurno(ctx context.Context, t *models.Turno) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepo) GetTurnoForCliente(ctx context.Context, turnoID, clienteID uint) (*models.Turno, error) {
	args := m.Called(ctx, turnoID, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Turno), args.Error(1)
}

func (m *mockRepo) GetTurnoForTaller(ctx context.Context, turnoID, tallerID uint) (*models.Turno, error) {
	args := m.Called(ctx, turnoID, tallerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Turno), args.Error(1)
}

func (m *mockRepo) UpdateTurno(ctx context.Context, t *models.Turno) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepo) ListTurnosForCliente(ctx context.Context, clienteID uint) ([]models.Turno, error) {
	args := m.Called(ctx, clienteID)
	return args.Get(0).([]models.Turno), args.Error(1)
}

func (m *mockRepo) ListTurnosForTaller(ctx context.Context, tallerID uint) ([]models.Turno, error) {
	args := m.Called(ctx, tallerID)
	return args.Get(0).([]models.Turno), args.Error(1)
}

func (m *mockRepo) GetPagoByTurno(ctx context.Context, turnoID uint) (*models.Pago, error) {
	args := m.Called(ctx, turnoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pago), args.Error(1)
}

func (m *mockRepo) CreatePago(ctx context.Context, p *models.Pago) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepo) SetPagoReference(ctx context.Context, pagoID uint, ref string) (bool, error) {
	args := m.Called(ctx, pagoID, ref)
	return args.Bool(0), args.Error(1)
}
