package turno

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/cache"
	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, c *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute deriva los slots reservables de un taller para una fecha:
// ventana de atención menos horas ocupadas.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	tallerID uint,
	fecha string,
) ([]string, error) {

	if _, err := timezone.ParseDate(fecha); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if slots, ok := uc.cache.Get(ctx, tallerID, fecha); ok {
		return slots, nil
	}

	taller, err := uc.repo.GetTallerByID(ctx, tallerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTallerNotFound)
		}
		return nil, err
	}

	ocupadas, err := uc.repo.ListOccupiedHours(ctx, tallerID, fecha)
	if err != nil {
		return nil, err
	}

	slots, err := domain.AvailableSlots(taller.HorarioInicio, taller.HorarioFin, ocupadas)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, tallerID, fecha, slots)

	return slots, nil
}
