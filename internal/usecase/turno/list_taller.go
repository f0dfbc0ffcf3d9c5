package turno

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/dto"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
)

type ListForTaller struct {
	repo domain.Repository
}

func NewListForTaller(repo domain.Repository) *ListForTaller {
	return &ListForTaller{repo: repo}
}

// Execute resuelve primero el taller del dueño; si el usuario no tiene
// taller la operación es not found. Orden: fecha ascendente, hora
// ascendente.
func (uc *ListForTaller) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.TurnoTallerDTO, error) {

	taller, err := uc.repo.GetTallerByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeTallerNotFound)
		}
		return nil, err
	}

	turnos, err := uc.repo.ListTurnosForTaller(ctx, taller.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TurnoTallerDTO, 0, len(turnos))
	for _, t := range turnos {
		out = append(out, dto.TurnoTallerDTO{
			ID:            t.ID,
			Fecha:         t.Fecha,
			Hora:          domain.FormatHour(t.Hora),
			Estado:        t.Estado,
			MontoAsignado: t.MontoAsignado,

			ClienteID:       t.ClienteID,
			ClienteNombre:   t.Cliente.Nombre,
			ClienteApellido: t.Cliente.Apellido,
			ClienteTelefono: t.Cliente.Telefono,
		})
	}

	return out, nil
}
