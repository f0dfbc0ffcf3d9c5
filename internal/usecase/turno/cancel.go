package turno

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/cache"
	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/timezone"
)

type CancelTurno struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewCancelTurno(repo domain.Repository, c *cache.AvailabilityCache) *CancelTurno {
	return &CancelTurno{repo: repo, cache: c}
}

// Execute cancela un turno del cliente. Nunca se borra: transición de
// estado, y el slot queda libre para una nueva reserva.
func (uc *CancelTurno) Execute(
	ctx context.Context,
	clienteID uint,
	turnoID uint,
) (*models.Turno, error) {

	t, err := uc.repo.GetTurnoForCliente(ctx, turnoID, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTurnoNotFound)
		}
		return nil, err
	}

	if err := domain.Cancel(t, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTurno(ctx, t); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, t.TallerID, t.Fecha)

	return t, nil
}
