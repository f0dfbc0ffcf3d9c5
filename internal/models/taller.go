package models

import "time"

type Taller struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UsuarioID uint    `gorm:"uniqueIndex" json:"usuario_id"`
	Usuario   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	NombreTaller string `gorm:"size:100;not null" json:"nombre_taller"`
	Ciudad       string `gorm:"size:100" json:"ciudad"`
	Direccion    string `gorm:"size:255" json:"direccion"`

	BarrioID uint   `json:"barrio_id"`
	Barrio   Barrio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barrio"`

	// Ventana de atención en horas enteras: [HorarioInicio, HorarioFin)
	HorarioInicio int `json:"horario_inicio"`
	HorarioFin    int `json:"horario_fin"`
	DuracionTurno int `gorm:"default:60" json:"duracion_turno"`

	DiasLaborales string `gorm:"size:100" json:"dias_laborales"`

	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`

	FotoURL string `gorm:"size:255" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
