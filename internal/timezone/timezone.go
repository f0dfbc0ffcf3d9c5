package timezone

import "time"

// Todos los talleres comparten una única zona horaria fija; las horas de
// los turnos son horas enteras del día, sin conversión entre zonas.
const DefaultTimezone = "America/Argentina/Buenos_Aires"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate valida y normaliza una fecha calendario YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}
