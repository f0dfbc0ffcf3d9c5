package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	ucPago "github.com/TallerTurnos01/taller-scheduler/internal/usecase/pago"
)

type PagoHandler struct {
	initiate *ucPago.InitiatePago
}

func NewPagoHandler(initiate *ucPago.InitiatePago) *PagoHandler {
	return &PagoHandler{initiate: initiate}
}

type CreatePreferenciaRequest struct {
	TurnoID uint `json:"turno_id" binding:"required"`
}

func (h *PagoHandler) CreatePreferencia(c *gin.Context) {
	clienteID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePreferenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ref, err := h.initiate.Execute(c.Request.Context(), clienteID, req.TurnoID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeTurnoNotFound):
			httperr.NotFound(c, httperr.CodeTurnoNotFound, "Turno no encontrado.")
		case httperr.IsBusiness(err, httperr.CodePriceNotAssigned):
			httperr.BadRequest(c, httperr.CodePriceNotAssigned, "El taller todavía no asignó el precio.")
		case httperr.IsBusiness(err, httperr.CodePaymentProvider):
			httperr.Internal(c, httperr.CodePaymentProvider, "El proveedor de pagos no respondió; reintentá más tarde.")
		default:
			httperr.Internal(c, "failed_to_initiate_pago", "Error al iniciar el pago.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"preference_id": ref})
}
