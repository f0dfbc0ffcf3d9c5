package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/storage"
)

type FotoHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewFotoHandler(db *gorm.DB, photos *storage.PhotoStore) *FotoHandler {
	return &FotoHandler{db: db, photos: photos}
}

// Upload recibe la foto del taller como multipart, la procesa y guarda la
// URL resultante en el perfil.
func (h *FotoHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.photos.Enabled() {
		httperr.Internal(c, "storage_disabled", "El almacenamiento de fotos no está configurado.")
		return
	}

	var taller models.Taller
	if err := h.db.Where("usuario_id = ?", userID).First(&taller).Error; err != nil {
		httperr.NotFound(c, httperr.CodeTallerNotFound, "El usuario no tiene taller.")
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Falta el archivo 'foto'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Error al leer el archivo.")
		return
	}
	defer src.Close()

	url, err := h.photos.UploadTallerPhoto(c.Request.Context(), taller.ID, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Error al subir la foto.")
		return
	}

	taller.FotoURL = url
	if err := h.db.Save(&taller).Error; err != nil {
		httperr.Internal(c, "failed_to_update_taller", "Error al actualizar el taller.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"foto_url": url})
}
