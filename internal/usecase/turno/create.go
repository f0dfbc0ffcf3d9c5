package turno

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/cache"
	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/metrics"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/notify"
	"github.com/TallerTurnos01/taller-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateTurnoInput struct {
	ClienteID     uint
	ClienteEmail  string
	ClienteNombre string

	TallerID uint

	Fecha string // YYYY-MM-DD
	Hora  int
}

// ======================================================
// USE CASE
// ======================================================

type CreateTurno struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	cache  *cache.AvailabilityCache
}

func NewCreateTurno(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	c *cache.AvailabilityCache,
) *CreateTurno {
	return &CreateTurno{
		repo:   repo,
		notify: dispatcher,
		cache:  c,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateTurno) Execute(
	ctx context.Context,
	in CreateTurnoInput,
) (*models.Turno, error) {

	if _, err := timezone.ParseDate(in.Fecha); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if in.Hora < domain.MinHour || in.Hora > domain.MaxHour {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidHour)
	}

	taller, err := uc.repo.GetTallerByID(ctx, in.TallerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTallerNotFound)
		}
		return nil, err
	}

	if err := domain.ValidateWindow(taller.HorarioInicio, taller.HorarioFin); err != nil {
		return nil, err
	}

	if !domain.WithinWindow(in.Hora, taller.HorarioInicio, taller.HorarioFin) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	t := &models.Turno{
		ClienteID: in.ClienteID,
		TallerID:  in.TallerID,
		Fecha:     in.Fecha,
		Hora:      in.Hora,
		Estado:    string(domain.EstadoInicial()),
	}

	// Re-validación en el momento del write: el repo inserta con
	// pre-chequeo bloqueado y el índice único parcial de respaldo.
	if err := uc.repo.CreateTurno(ctx, t); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			metrics.IncSlotConflict()
		}
		return nil, err
	}

	metrics.IncTurnoCreated(t.Estado)
	uc.cache.Invalidate(ctx, in.TallerID, in.Fecha)

	// Fire-and-forget: el mail nunca frena ni voltea la reserva
	if uc.notify != nil && in.ClienteEmail != "" {
		uc.notify.Dispatch(notify.Event{
			To:           in.ClienteEmail,
			ClienteName:  in.ClienteNombre,
			TallerNombre: taller.NombreTaller,
			Fecha:        in.Fecha,
			Hora:         in.Hora,
		})
	}

	return t, nil
}
