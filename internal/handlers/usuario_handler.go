package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
	"github.com/TallerTurnos01/taller-scheduler/internal/httpresp"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
)

// CRUD de usuarios para el admin. El delete de acá es el único borrado
// físico del sistema.

type UsuarioHandler struct {
	db *gorm.DB
}

func NewUsuarioHandler(db *gorm.DB) *UsuarioHandler {
	return &UsuarioHandler{db: db}
}

func (h *UsuarioHandler) List(c *gin.Context) {
	var usuarios []models.Usuario
	if err := h.db.Order("id ASC").Find(&usuarios).Error; err != nil {
		httperr.Internal(c, "failed_to_list_usuarios", "Error al listar usuarios.")
		return
	}

	httpresp.List(c, usuarios)
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := h.db.First(&usuario, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "usuario_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, usuario)
}

type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	Rol      *string `json:"rol"`
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := h.db.First(&usuario, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "usuario_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		usuario.Apellido = *req.Apellido
	}
	if req.Email != nil {
		usuario.Email = *req.Email
	}
	if req.Telefono != nil {
		usuario.Telefono = *req.Telefono
	}
	if req.Rol != nil {
		rol, err := models.ParseRole(*req.Rol)
		if err != nil {
			httperr.BadRequest(c, "invalid_role", "Rol inválido.")
			return
		}
		usuario.Rol = rol
	}

	if err := h.db.Save(&usuario).Error; err != nil {
		httperr.Internal(c, "failed_to_update_usuario", "Error al actualizar el usuario.")
		return
	}

	httpresp.OK(c, usuario)
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Usuario{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_usuario", "Error al borrar el usuario.")
		return
	}

	c.Status(http.StatusNoContent)
}
