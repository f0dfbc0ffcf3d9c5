package turno

import (
	"context"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/dto"
)

type ListForCliente struct {
	repo domain.Repository
}

func NewListForCliente(repo domain.Repository) *ListForCliente {
	return &ListForCliente{repo: repo}
}

// Execute lista los turnos del cliente con los datos del taller, fecha
// descendente y hora ascendente.
func (uc *ListForCliente) Execute(
	ctx context.Context,
	clienteID uint,
) ([]dto.TurnoClienteDTO, error) {

	turnos, err := uc.repo.ListTurnosForCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TurnoClienteDTO, 0, len(turnos))
	for _, t := range turnos {
		out = append(out, dto.TurnoClienteDTO{
			ID:            t.ID,
			Fecha:         t.Fecha,
			Hora:          domain.FormatHour(t.Hora),
			Estado:        t.Estado,
			MontoAsignado: t.MontoAsignado,

			TallerID:        t.TallerID,
			TallerNombre:    t.Taller.NombreTaller,
			TallerDireccion: t.Taller.Direccion,
		})
	}

	return out, nil
}
