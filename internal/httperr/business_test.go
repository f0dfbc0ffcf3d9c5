package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeSlotConflict)

	assert.True(t, IsBusiness(err, CodeSlotConflict))
	assert.False(t, IsBusiness(err, CodeTurnoNotFound))
	assert.False(t, IsBusiness(errors.New("otro"), CodeSlotConflict))
	assert.False(t, IsBusiness(nil, CodeSlotConflict))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("otro")))
	assert.False(t, IsUniqueViolation(nil))
}
