package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/config"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barrio{},
		&models.Usuario{},
		&models.Taller{},
		&models.Turno{},
		&models.Pago{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Garantía de no doble reserva a nivel storage: índice único parcial
	// sobre los turnos no cancelados. Un turno cancelado libera el slot.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_turnos_slot_activo
        ON turnos (taller_id, fecha, hora)
        WHERE estado <> 'cancelado'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create slot index")
	}

	return db
}
