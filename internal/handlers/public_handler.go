package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/httpresp"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

// Navegación pública: barrios y talleres, sin autenticación.

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

func (h *PublicHandler) ListBarrios(c *gin.Context) {
	var barrios []models.Barrio
	if err := h.db.Order("nombre ASC").Find(&barrios).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barrios", "Error al listar barrios.")
		return
	}

	httpresp.List(c, barrios)
}

func (h *PublicHandler) ListTalleres(c *gin.Context) {
	var talleres []models.Taller
	if err := h.db.
		Preload("Barrio").
		Order("barrio_id ASC").
		Find(&talleres).Error; err != nil {
		httperr.Internal(c, "failed_to_list_talleres", "Error al listar talleres.")
		return
	}

	httpresp.List(c, talleres)
}

func (h *PublicHandler) ListTalleresByBarrio(c *gin.Context) {
	barrioID := c.Param("id")

	var talleres []models.Taller
	if err := h.db.
		Preload("Barrio").
		Where("barrio_id = ?", barrioID).
		Find(&talleres).Error; err != nil {
		httperr.Internal(c, "failed_to_list_talleres", "Error al listar talleres.")
		return
	}

	httpresp.List(c, talleres)
}

func (h *PublicHandler) GetTaller(c *gin.Context) {
	id := c.Param("id")

	var taller models.Taller
	if err := h.db.
		Preload("Barrio").
		First(&taller, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeTallerNotFound, "Taller no encontrado.")
		return
	}

	httpresp.OK(c, taller)
}
