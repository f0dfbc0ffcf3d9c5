package models

import "time"

type Turno struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `json:"cliente_id"`
	Cliente   Usuario `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	TallerID uint   `json:"taller_id"`
	Taller   Taller `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"taller"`

	// Fecha calendario YYYY-MM-DD, sin componente horario. La hora del
	// turno es la hora entera del día. El índice único parcial sobre
	// (taller_id, fecha, hora) de los turnos no cancelados se crea en db.
	Fecha string `gorm:"size:10;index;not null" json:"fecha"`
	Hora  int    `gorm:"not null" json:"hora"`

	Estado string `gorm:"size:20;default:'pendiente'" json:"estado"`

	MontoAsignado *float64 `json:"monto_asignado"`

	CanceladoEn *time.Time `json:"cancelado_en"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
