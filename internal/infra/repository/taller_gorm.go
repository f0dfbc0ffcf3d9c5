package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

type TallerGormRepository struct {
	db *gorm.DB
}

func NewTallerGormRepository(db *gorm.DB) *TallerGormRepository {
	return &TallerGormRepository{db: db}
}

// --------------------------------------------------
// Taller
// --------------------------------------------------

func (r *TallerGormRepository) GetTallerByID(
	ctx context.Context,
	id uint,
) (*models.Taller, error) {

	var taller models.Taller
	if err := r.db.WithContext(ctx).
		Preload("Barrio").
		First(&taller, id).Error; err != nil {
		return nil, err
	}
	return &taller, nil
}

func (r *TallerGormRepository) GetTallerByOwner(
	ctx context.Context,
	usuarioID uint,
) (*models.Taller, error) {

	var taller models.Taller
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		First(&taller).Error; err != nil {
		return nil, err
	}
	return &taller, nil
}

// --------------------------------------------------
// Ocupación
// --------------------------------------------------

// ListOccupiedHours devuelve las horas enteras ya reservadas (turnos no
// cancelados) para un taller y fecha. Se devuelven como enteros: la
// comparación con los slots candidatos nunca pasa por strings.
func (r *TallerGormRepository) ListOccupiedHours(
	ctx context.Context,
	tallerID uint,
	fecha string,
) ([]int, error) {

	var horas []int
	if err := r.db.WithContext(ctx).
		Model(&models.Turno{}).
		Where(
			"taller_id = ? AND fecha = ? AND estado <> ?",
			tallerID, fecha, string(domain.EstadoCancelado),
		).
		Order("hora ASC").
		Pluck("hora", &horas).Error; err != nil {
		return nil, err
	}

	return horas, nil
}

// --------------------------------------------------
// Turno
// --------------------------------------------------

// CreateTurno inserta con pre-chequeo bloqueado dentro de una transacción.
// El índice único parcial es el respaldo atómico: si dos reservas
// concurrentes pasan el pre-chequeo, una termina en 23505 y también sale
// como slot_conflict.
func (r *TallerGormRepository) CreateTurno(
	ctx context.Context,
	t *models.Turno,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ocupantes []models.Turno
		if err := tx.
			Scopes(slotLockScope(t)).
			Find(&ocupantes).Error; err != nil {
			return err
		}

		if len(ocupantes) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		return tx.Create(t).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

// slotLockScope bloquea las filas en conflicto del slot. Postgres no
// acepta FOR UPDATE sobre agregados, así que el pre-chequeo trae filas
// con lock en vez de contar.
func slotLockScope(t *models.Turno) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"taller_id = ? AND fecha = ? AND hora = ? AND estado <> ?",
				t.TallerID, t.Fecha, t.Hora, string(domain.EstadoCancelado),
			).
			Limit(1)
	}
}

func (r *TallerGormRepository) GetTurnoForCliente(
	ctx context.Context,
	turnoID uint,
	clienteID uint,
) (*models.Turno, error) {

	var t models.Turno
	if err := r.db.WithContext(ctx).
		Where("id = ? AND cliente_id = ?", turnoID, clienteID).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TallerGormRepository) GetTurnoForTaller(
	ctx context.Context,
	turnoID uint,
	tallerID uint,
) (*models.Turno, error) {

	var t models.Turno
	if err := r.db.WithContext(ctx).
		Where("id = ? AND taller_id = ?", turnoID, tallerID).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TallerGormRepository) UpdateTurno(
	ctx context.Context,
	t *models.Turno,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TallerGormRepository) ListTurnosForCliente(
	ctx context.Context,
	clienteID uint,
) ([]models.Turno, error) {

	var turnos []models.Turno
	if err := r.db.WithContext(ctx).
		Preload("Taller").
		Preload("Taller.Barrio").
		Where("cliente_id = ?", clienteID).
		Order("fecha DESC").
		Order("hora ASC").
		Find(&turnos).Error; err != nil {
		return nil, err
	}

	return turnos, nil
}

func (r *TallerGormRepository) ListTurnosForTaller(
	ctx context.Context,
	tallerID uint,
) ([]models.Turno, error) {

	var turnos []models.Turno
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Where("taller_id = ?", tallerID).
		Order("fecha ASC").
		Order("hora ASC").
		Find(&turnos).Error; err != nil {
		return nil, err
	}

	return turnos, nil
}

// --------------------------------------------------
// Pago
// --------------------------------------------------

func (r *TallerGormRepository) GetPagoByTurno(
	ctx context.Context,
	turnoID uint,
) (*models.Pago, error) {

	var p models.Pago
	if err := r.db.WithContext(ctx).
		Where("turno_id = ?", turnoID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TallerGormRepository) CreatePago(
	ctx context.Context,
	p *models.Pago,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// SetPagoReference escribe la referencia solo si todavía es NULL; la
// condición en el UPDATE es lo que la deja inmutable después del primer
// write.
func (r *TallerGormRepository) SetPagoReference(
	ctx context.Context,
	pagoID uint,
	ref string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Pago{}).
		Where("id = ? AND preference_id IS NULL", pagoID).
		Update("preference_id", ref)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*TallerGormRepository)(nil)
