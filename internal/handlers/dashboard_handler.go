package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TallerTurnos01/taller-scheduler/internal/domain/schedule"
	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/timezone"
)

// Métricas agregadas para el admin: consultas directas sobre las tablas
// vivas, sin estado propio.

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type resumenMes struct {
	Mes      string  `json:"mes"`
	Turnos   int     `json:"turnos"`
	Ingresos float64 `json:"ingresos"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	desde := c.DefaultQuery("desde", "2025-01-01")
	hasta := c.DefaultQuery("hasta", "2025-12-31")

	if _, err := timezone.ParseDate(desde); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Fecha 'desde' inválida.")
		return
	}
	if _, err := timezone.ParseDate(hasta); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Fecha 'hasta' inválida.")
		return
	}

	var talleresNuevos int64
	if err := h.db.Model(&models.Taller{}).
		Where("created_at >= ? AND created_at <= ?", desde, hasta+" 23:59:59").
		Count(&talleresNuevos).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Error al obtener datos.")
		return
	}

	var turnosReservados int64
	if err := h.db.Model(&models.Turno{}).
		Where("fecha >= ? AND fecha <= ? AND estado <> ?", desde, hasta, string(domain.EstadoCancelado)).
		Count(&turnosReservados).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Error al obtener datos.")
		return
	}

	var filas []struct {
		Fecha         string
		MontoAsignado *float64
	}
	if err := h.db.Model(&models.Turno{}).
		Select("fecha", "monto_asignado").
		Where("fecha >= ? AND fecha <= ? AND estado <> ?", desde, hasta, string(domain.EstadoCancelado)).
		Order("fecha ASC").
		Find(&filas).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Error al obtener datos.")
		return
	}

	var totalIngresos float64
	porMes := map[string]*resumenMes{}
	var orden []string

	for _, f := range filas {
		monto := 0.0
		if f.MontoAsignado != nil {
			monto = *f.MontoAsignado
		}
		totalIngresos += monto

		mes := f.Fecha
		if len(mes) >= 7 {
			mes = mes[:7] // YYYY-MM
		}

		r, ok := porMes[mes]
		if !ok {
			r = &resumenMes{Mes: mes}
			porMes[mes] = r
			orden = append(orden, mes)
		}
		r.Turnos++
		r.Ingresos += monto
	}

	resumen := make([]resumenMes, 0, len(orden))
	for _, mes := range orden {
		resumen = append(resumen, *porMes[mes])
	}

	c.JSON(http.StatusOK, gin.H{
		"periodo":           gin.H{"desde": desde, "hasta": hasta},
		"talleres_nuevos":   talleresNuevos,
		"turnos_reservados": turnosReservados,
		"total_ingresos":    totalIngresos,
		"resumen_por_mes":   resumen,
	})
}
