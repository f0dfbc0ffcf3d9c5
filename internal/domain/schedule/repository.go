package schedule

import (
	"context"

	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

type Repository interface {
	// -------- Taller --------
	GetTallerByID(
		ctx context.Context,
		id uint,
	) (*models.Taller, error)

	GetTallerByOwner(
		ctx context.Context,
		usuarioID uint,
	) (*models.Taller, error)

	// -------- Ocupación --------
	ListOccupiedHours(
		ctx context.Context,
		tallerID uint,
		fecha string,
	) ([]int, error)

	// -------- Turno --------
	CreateTurno(
		ctx context.Context,
		t *models.Turno,
	) error

	GetTurnoForCliente(
		ctx context.Context,
		turnoID uint,
		clienteID uint,
	) (*models.Turno, error)

	GetTurnoForTaller(
		ctx context.Context,
		turnoID uint,
		tallerID uint,
	) (*models.Turno, error)

	UpdateTurno(
		ctx context.Context,
		t *models.Turno,
	) error

	ListTurnosForCliente(
		ctx context.Context,
		clienteID uint,
	) ([]models.Turno, error)

	ListTurnosForTaller(
		ctx context.Context,
		tallerID uint,
	) ([]models.Turno, error)

	// -------- Pago --------
	GetPagoByTurno(
		ctx context.Context,
		turnoID uint,
	) (*models.Pago, error)

	CreatePago(
		ctx context.Context,
		p *models.Pago,
	) error

	// SetPagoReference escribe la referencia externa una única vez:
	// devuelve false si el registro ya tenía referencia.
	SetPagoReference(
		ctx context.Context,
		pagoID uint,
		ref string,
	) (bool, error)
}
