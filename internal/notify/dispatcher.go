package notify

import (
	"fmt"

	"github.com/rs/zerolog/log"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
)

// Confirmación de reserva, desacoplada del camino de la transacción: el
// booking nunca espera ni falla por el mail.

type Event struct {
	To           string
	ClienteName  string
	TallerNombre string
	Fecha        string
	Hora         int
}

type Dispatcher struct {
	mailer Mailer
	queue  chan Event
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.mailer == nil {
			continue
		}
		if err := d.mailer.Send(
			ev.To,
			"Confirmación de tu reserva",
			confirmationBody(ev),
		); err != nil {
			log.Error().Err(err).Str("to", ev.To).Msg("notify error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// cola llena → descartamos la notificación (nunca frenar la API)
		log.Warn().Msg("notify queue full, dropping event")
	}
}

func confirmationBody(ev Event) string {
	saludo := "Hola,"
	if ev.ClienteName != "" {
		saludo = fmt.Sprintf("Hola %s,", ev.ClienteName)
	}

	return fmt.Sprintf(`
        <h2>Reserva confirmada</h2>
        <p>%s</p>
        <p>Tu turno en el taller <strong>%s</strong> ha sido registrado.</p>
        <p><strong>Fecha:</strong> %s</p>
        <p><strong>Hora:</strong> %s</p>
        <p>Gracias por utilizar nuestro servicio 🚗</p>
    `, saludo, ev.TallerNombre, ev.Fecha, domain.FormatHour(ev.Hora))
}
