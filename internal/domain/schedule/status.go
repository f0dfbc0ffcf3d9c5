package schedule

import (
	"time"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

// ===============================
// Estado del turno
// ===============================

type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoConfirmado Estado = "confirmado"
	EstadoCancelado  Estado = "cancelado"
)

// Activo dice si el estado ocupa su slot. Un turno cancelado libera la
// hora para una nueva reserva.
func (e Estado) Activo() bool {
	return e == EstadoPendiente || e == EstadoConfirmado
}

func EstadoInicial() Estado {
	return EstadoPendiente
}

// ===============================
// Transiciones
// ===============================

func CanCancel(current Estado) error {
	if !current.Activo() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func Cancel(t *models.Turno, now time.Time) error {
	if err := CanCancel(Estado(t.Estado)); err != nil {
		return err
	}

	t.Estado = string(EstadoCancelado)
	t.CanceladoEn = &now
	return nil
}
