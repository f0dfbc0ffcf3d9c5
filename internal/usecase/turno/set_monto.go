package turno

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

type SetMonto struct {
	repo domain.Repository
}

func NewSetMonto(repo domain.Repository) *SetMonto {
	return &SetMonto{repo: repo}
}

// Execute asigna el precio de un turno. Solo el dueño del taller del
// turno puede hacerlo; un monto negativo se rechaza sin tocar el valor
// anterior.
func (uc *SetMonto) Execute(
	ctx context.Context,
	ownerID uint,
	turnoID uint,
	monto float64,
) (*models.Turno, error) {

	if monto < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}

	taller, err := uc.repo.GetTallerByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTallerNotFound)
		}
		return nil, err
	}

	t, err := uc.repo.GetTurnoForTaller(ctx, turnoID, taller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTurnoNotFound)
		}
		return nil, err
	}

	t.MontoAsignado = &monto

	if err := uc.repo.UpdateTurno(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
