package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// PreferenceInput es lo que el linker de pagos manda al proveedor. El
// PagoID viaja como external_reference: es el token de reconciliación para
// matchear la respuesta del proveedor con el registro interno.
type PreferenceInput struct {
	TurnoID uint
	Monto   float64
	PagoID  uint
}

// PreferenceClient abstrae al proveedor externo para los use cases y los
// tests.
type PreferenceClient interface {
	CreatePreference(ctx context.Context, in PreferenceInput) (string, error)
}

// MercadoPago se construye una sola vez en main y se inyecta; nada alcanza
// al proveedor por estado global.
type MercadoPago struct {
	prefs   preference.Client
	timeout time.Duration
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		prefs:   preference.NewClient(cfg),
		timeout: 10 * time.Second,
	}, nil
}

func (m *MercadoPago) CreatePreference(ctx context.Context, in PreferenceInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         strconv.FormatUint(uint64(in.TurnoID), 10),
				Title:      fmt.Sprintf("Pago turno #%d", in.TurnoID),
				Quantity:   1,
				CurrencyID: "ARS",
				UnitPrice:  in.Monto,
			},
		},
		ExternalReference: strconv.FormatUint(uint64(in.PagoID), 10),
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}
