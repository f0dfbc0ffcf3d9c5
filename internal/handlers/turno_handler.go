package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	ucTurno "github.com/TallerTurnos01/taller-scheduler/internal/usecase/turno"
)

// ======================================================
// HANDLER
// ======================================================

type TurnoHandler struct {
	availability *ucTurno.GetAvailability
	create       *ucTurno.CreateTurno
	listCliente  *ucTurno.ListForCliente
	listTaller   *ucTurno.ListForTaller
	setMonto     *ucTurno.SetMonto
	cancel       *ucTurno.CancelTurno
}

func NewTurnoHandler(
	availability *ucTurno.GetAvailability,
	create *ucTurno.CreateTurno,
	listCliente *ucTurno.ListForCliente,
	listTaller *ucTurno.ListForTaller,
	setMonto *ucTurno.SetMonto,
	cancel *ucTurno.CancelTurno,
) *TurnoHandler {
	return &TurnoHandler{
		availability: availability,
		create:       create,
		listCliente:  listCliente,
		listTaller:   listTaller,
		setMonto:     setMonto,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTurnoRequest struct {
	Fecha string `json:"fecha" binding:"required"` // YYYY-MM-DD
	Hora  *int   `json:"hora" binding:"required"`
}

type SetMontoRequest struct {
	Precio *float64 `json:"precio" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *TurnoHandler) Availability(c *gin.Context) {
	tallerID, err := strconv.ParseUint(c.Param("taller_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_taller_id", "Taller inválido.")
		return
	}

	fecha := c.Param("fecha")

	slots, err := h.availability.Execute(c.Request.Context(), uint(tallerID), fecha)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeTallerNotFound):
			httperr.NotFound(c, httperr.CodeTallerNotFound, "Taller no encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDate):
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Fecha inválida.")
		case httperr.IsBusiness(err, httperr.CodeInvalidHourRange):
			httperr.BadRequest(c, httperr.CodeInvalidHourRange, "Horario del taller inválido.")
		default:
			httperr.Internal(c, "availability_failed", "Error al calcular horarios.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fecha":       fecha,
		"disponibles": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *TurnoHandler) Create(c *gin.Context) {
	clienteID := c.MustGet(middleware.ContextUserID).(uint)
	clienteEmail := c.MustGet(middleware.ContextUserEmail).(string)
	clienteNombre := c.GetString(middleware.ContextUserName)

	tallerID, err := strconv.ParseUint(c.Param("taller_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_taller_id", "Taller inválido.")
		return
	}

	var req CreateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t, err := h.create.Execute(c.Request.Context(), ucTurno.CreateTurnoInput{
		ClienteID:     clienteID,
		ClienteEmail:  clienteEmail,
		ClienteNombre: clienteNombre,
		TallerID:      uint(tallerID),
		Fecha:        req.Fecha,
		Hora:         *req.Hora,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			httperr.Conflict(c, httperr.CodeSlotConflict, "El horario ya está reservado.")
		case httperr.IsBusiness(err, httperr.CodeTallerNotFound):
			httperr.NotFound(c, httperr.CodeTallerNotFound, "Taller no encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDate):
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Fecha inválida.")
		case httperr.IsBusiness(err, httperr.CodeInvalidHour):
			httperr.BadRequest(c, httperr.CodeInvalidHour, "Hora inválida.")
		case httperr.IsBusiness(err, httperr.CodeInvalidHourRange):
			httperr.BadRequest(c, httperr.CodeInvalidHourRange, "Horario del taller inválido.")
		case httperr.IsBusiness(err, httperr.CodeOutsideHours):
			httperr.BadRequest(c, httperr.CodeOutsideHours, "Fuera del horario de atención.")
		default:
			httperr.Internal(c, "failed_to_create_turno", "Error al crear el turno.")
		}
		return
	}

	c.JSON(http.StatusCreated, t)
}

// ======================================================
// LIST (dispatch por rol, enum cerrado)
// ======================================================

func (h *TurnoHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	rol := c.MustGet(middleware.ContextUserRole).(models.Role)

	switch rol {
	case models.RoleCliente:
		turnos, err := h.listCliente.Execute(c.Request.Context(), userID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_turnos", "Error al listar turnos.")
			return
		}
		c.JSON(http.StatusOK, turnos)

	case models.RoleTaller:
		turnos, err := h.listTaller.Execute(c.Request.Context(), userID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeTallerNotFound) {
				httperr.NotFound(c, httperr.CodeTallerNotFound, "El usuario no tiene taller.")
				return
			}
			httperr.Internal(c, "failed_to_list_turnos", "Error al listar turnos.")
			return
		}
		c.JSON(http.StatusOK, turnos)

	case models.RoleAdmin:
		httperr.BadRequest(c, "unsupported_role", "El admin no tiene turnos propios.")

	default:
		httperr.Forbidden(c, "forbidden", "Rol desconocido.")
	}
}

// ======================================================
// MONTO
// ======================================================

func (h *TurnoHandler) SetMonto(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	turnoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_turno_id", "Turno inválido.")
		return
	}

	var req SetMontoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t, err := h.setMonto.Execute(c.Request.Context(), ownerID, uint(turnoID), *req.Precio)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidAmount):
			httperr.BadRequest(c, httperr.CodeInvalidAmount, "El monto no puede ser negativo.")
		case httperr.IsBusiness(err, httperr.CodeTallerNotFound):
			httperr.NotFound(c, httperr.CodeTallerNotFound, "El usuario no tiene taller.")
		case httperr.IsBusiness(err, httperr.CodeTurnoNotFound):
			httperr.NotFound(c, httperr.CodeTurnoNotFound, "Turno no encontrado.")
		default:
			httperr.Internal(c, "failed_to_update_monto", "Error al asignar el monto.")
		}
		return
	}

	c.JSON(http.StatusOK, t)
}

// ======================================================
// CANCEL
// ======================================================

func (h *TurnoHandler) Cancel(c *gin.Context) {
	clienteID := c.MustGet(middleware.ContextUserID).(uint)

	turnoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_turno_id", "Turno inválido.")
		return
	}

	t, err := h.cancel.Execute(c.Request.Context(), clienteID, uint(turnoID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeTurnoNotFound):
			httperr.NotFound(c, httperr.CodeTurnoNotFound, "Turno no encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.BadRequest(c, httperr.CodeInvalidState, "El turno no puede cancelarse.")
		default:
			httperr.Internal(c, "failed_to_cancel_turno", "Error al cancelar el turno.")
		}
		return
	}

	c.JSON(http.StatusOK, t)
}
