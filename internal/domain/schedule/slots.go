package schedule

import (
	"fmt"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
)

// La granularidad es exactamente una hora: un slot es una hora entera del
// día dentro de la ventana [inicio, fin) del taller.

const (
	MinHour = 0
	MaxHour = 23
)

// ValidateWindow rechaza ventanas fuera de 0..23 o invertidas antes de que
// produzcan etiquetas malformadas o rangos negativos. inicio == fin es una
// ventana válida pero vacía.
func ValidateWindow(inicio, fin int) error {
	if inicio < MinHour || inicio > MaxHour || fin < MinHour || fin > MaxHour {
		return httperr.ErrBusiness(httperr.CodeInvalidHourRange)
	}
	if inicio > fin {
		return httperr.ErrBusiness(httperr.CodeInvalidHourRange)
	}
	return nil
}

// FormatHour etiqueta una hora entera como HH:00:00. Solo se formatea en el
// borde: toda comparación de ocupación se hace sobre enteros.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00:00", h)
}

// AvailableSlots devuelve las horas libres de la ventana [inicio, fin) en
// orden ascendente, ya formateadas. Las horas ocupadas se comparan como
// enteros punta a punta; ventana totalmente reservada o vacía devuelve un
// slice vacío, nunca nil.
func AvailableSlots(inicio, fin int, ocupadas []int) ([]string, error) {
	if err := ValidateWindow(inicio, fin); err != nil {
		return nil, err
	}

	occupied := make(map[int]struct{}, len(ocupadas))
	for _, h := range ocupadas {
		occupied[h] = struct{}{}
	}

	slots := make([]string, 0, fin-inicio)
	for h := inicio; h < fin; h++ {
		if _, taken := occupied[h]; taken {
			continue
		}
		slots = append(slots, FormatHour(h))
	}

	return slots, nil
}

// WithinWindow dice si una hora de turno cae dentro de la ventana del
// taller. La hora de cierre no es reservable.
func WithinWindow(hora, inicio, fin int) bool {
	return hora >= inicio && hora < fin
}
