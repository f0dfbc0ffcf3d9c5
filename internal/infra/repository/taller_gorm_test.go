package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.Open("host=localhost user=x dbname=x"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestSlotLockScope_SQLGenerado(t *testing.T) {
	db := dryRunDB(t)

	turno := &models.Turno{TallerID: 1, Fecha: "2025-06-15", Hora: 10}

	var ocupantes []models.Turno
	stmt := db.Scopes(slotLockScope(turno)).Find(&ocupantes)
	require.NoError(t, stmt.Error)

	sql := stmt.Statement.SQL.String()

	assert.Contains(t, sql, "FOR UPDATE")
	// postgres rechaza FOR UPDATE combinado con agregados
	assert.NotContains(t, strings.ToLower(sql), "count(")
	assert.Contains(t, sql, "taller_id = ")
	assert.Contains(t, sql, "fecha = ")
	assert.Contains(t, sql, "hora = ")
	assert.Contains(t, sql, "estado <> ")

	vars := stmt.Statement.Vars
	require.GreaterOrEqual(t, len(vars), 4)
	assert.Equal(t, "cancelado", vars[3])
}
