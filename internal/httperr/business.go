package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de negocio que levantan los use cases. El handler
// decide el status HTTP; acá solo viaja el código.
const (
	CodeTallerNotFound   = "taller_not_found"
	CodeTurnoNotFound    = "turno_not_found"
	CodeSlotConflict     = "slot_conflict"
	CodeInvalidDate      = "invalid_date"
	CodeInvalidHour      = "invalid_hour"
	CodeInvalidHourRange = "invalid_hour_range"
	CodeOutsideHours     = "outside_working_hours"
	CodeInvalidState     = "invalid_state"
	CodeInvalidAmount    = "invalid_amount"
	CodePriceNotAssigned = "price_not_assigned"
	CodePartialFailure   = "partial_failure"
	CodePaymentProvider  = "payment_provider_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation detecta SQLSTATE 23505 del driver postgres. Es el
// respaldo atómico del chequeo de conflicto: dos inserts concurrentes
// sobre el mismo slot terminan acá aunque el pre-chequeo los deje pasar.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
