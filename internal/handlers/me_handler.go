package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var usuario models.Usuario
	if err := h.db.First(&usuario, userID).Error; err != nil {
		httperr.NotFound(c, "usuario_not_found", "Usuario no encontrado.")
		return
	}

	c.JSON(http.StatusOK, usuario)
}

func (h *MeHandler) GetMeTaller(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var taller models.Taller
	if err := h.db.
		Preload("Barrio").
		Where("usuario_id = ?", userID).
		First(&taller).Error; err != nil {
		httperr.NotFound(c, httperr.CodeTallerNotFound, "El usuario no tiene taller.")
		return
	}

	c.JSON(http.StatusOK, taller)
}

type UpdateTallerRequest struct {
	NombreTaller  *string  `json:"nombre_taller"`
	Ciudad        *string  `json:"ciudad"`
	Direccion     *string  `json:"direccion"`
	BarrioID      *uint    `json:"barrio_id"`
	HorarioInicio *int     `json:"horario_inicio"`
	HorarioFin    *int     `json:"horario_fin"`
	DiasLaborales *string  `json:"dias_laborales"`
	Latitud       *float64 `json:"latitud"`
	Longitud      *float64 `json:"longitud"`
}

func (h *MeHandler) UpdateMeTaller(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var taller models.Taller
	if err := h.db.Where("usuario_id = ?", userID).First(&taller).Error; err != nil {
		httperr.NotFound(c, httperr.CodeTallerNotFound, "El usuario no tiene taller.")
		return
	}

	var req UpdateTallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.NombreTaller != nil {
		taller.NombreTaller = *req.NombreTaller
	}
	if req.Ciudad != nil {
		taller.Ciudad = *req.Ciudad
	}
	if req.Direccion != nil {
		taller.Direccion = *req.Direccion
	}
	if req.BarrioID != nil {
		taller.BarrioID = *req.BarrioID
	}
	if req.HorarioInicio != nil {
		taller.HorarioInicio = *req.HorarioInicio
	}
	if req.HorarioFin != nil {
		taller.HorarioFin = *req.HorarioFin
	}
	if req.DiasLaborales != nil {
		taller.DiasLaborales = *req.DiasLaborales
	}
	if req.Latitud != nil {
		taller.Latitud = *req.Latitud
	}
	if req.Longitud != nil {
		taller.Longitud = *req.Longitud
	}

	// La ventana actualizada tiene que seguir cumpliendo el invariante
	if err := domain.ValidateWindow(taller.HorarioInicio, taller.HorarioFin); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidHourRange, "Horario de atención inválido.")
		return
	}
	if taller.HorarioInicio >= taller.HorarioFin {
		httperr.BadRequest(c, httperr.CodeInvalidHourRange, "Horario de atención inválido.")
		return
	}

	if err := h.db.Save(&taller).Error; err != nil {
		httperr.Internal(c, "failed_to_update_taller", "Error al actualizar el taller.")
		return
	}

	c.JSON(http.StatusOK, taller)
}
