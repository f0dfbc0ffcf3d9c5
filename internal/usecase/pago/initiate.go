package pago

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/metrics"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/payments"
)

type InitiatePago struct {
	repo     domain.Repository
	provider payments.PreferenceClient
}

func NewInitiatePago(
	repo domain.Repository,
	provider payments.PreferenceClient,
) *InitiatePago {
	return &InitiatePago{
		repo:     repo,
		provider: provider,
	}
}

// Execute vincula un turno con un registro de pago y una referencia del
// proveedor externo, de forma idempotente: a lo sumo un pago por turno, y
// la referencia se escribe una sola vez. Si el proveedor falla, el pago
// queda esperando referencia y un reintento reutiliza el mismo registro.
func (uc *InitiatePago) Execute(
	ctx context.Context,
	clienteID uint,
	turnoID uint,
) (string, error) {

	// Turno acotado al cliente: el turno de otro cliente es not found,
	// nunca forbidden, para no filtrar existencia.
	t, err := uc.repo.GetTurnoForCliente(ctx, turnoID, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httperr.ErrBusiness(httperr.CodeTurnoNotFound)
		}
		return "", err
	}

	if t.MontoAsignado == nil {
		return "", httperr.ErrBusiness(httperr.CodePriceNotAssigned)
	}

	registro, err := uc.findOrCreatePago(ctx, t)
	if err != nil {
		return "", err
	}

	if registro.PreferenceID != nil {
		metrics.IncPaymentIntent("reused")
		return *registro.PreferenceID, nil
	}

	if uc.provider == nil {
		metrics.IncPaymentIntent("unavailable")
		return "", httperr.ErrBusiness(httperr.CodePaymentProvider)
	}

	ref, err := uc.provider.CreatePreference(ctx, payments.PreferenceInput{
		TurnoID: t.ID,
		Monto:   *t.MontoAsignado,
		PagoID:  registro.ID,
	})
	if err != nil {
		// El pago persiste sin referencia; el reintento lo reutiliza
		log.Error().Err(err).Uint("pago_id", registro.ID).Msg("payment provider error")
		metrics.IncPaymentIntent("provider_error")
		return "", httperr.ErrBusiness(httperr.CodePaymentProvider)
	}

	ok, err := uc.repo.SetPagoReference(ctx, registro.ID, ref)
	if err != nil {
		return "", err
	}
	if !ok {
		// Otro initiate ganó la carrera: la referencia guardada manda
		stored, err := uc.repo.GetPagoByTurno(ctx, t.ID)
		if err == nil && stored.PreferenceID != nil {
			metrics.IncPaymentIntent("reused")
			return *stored.PreferenceID, nil
		}
	}

	metrics.IncPaymentIntent("created")
	return ref, nil
}

func (uc *InitiatePago) findOrCreatePago(
	ctx context.Context,
	t *models.Turno,
) (*models.Pago, error) {

	registro, err := uc.repo.GetPagoByTurno(ctx, t.ID)
	if err == nil {
		return registro, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	nuevo := &models.Pago{
		TurnoID:   t.ID,
		ClienteID: t.ClienteID,
		TallerID:  t.TallerID,
		Amount:    *t.MontoAsignado,
		Currency:  "ARS",
	}

	if err := uc.repo.CreatePago(ctx, nuevo); err != nil {
		// Initiate concurrente creó el registro primero: reutilizar
		if httperr.IsUniqueViolation(err) {
			return uc.repo.GetPagoByTurno(ctx, t.ID)
		}
		return nil, err
	}

	return nuevo, nil
}
