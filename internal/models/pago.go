package models

import "time"

type Pago struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// A lo sumo un pago por turno.
	TurnoID uint  `gorm:"uniqueIndex;not null" json:"turno_id"`
	Turno   Turno `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClienteID uint `json:"cliente_id"`
	TallerID  uint `json:"taller_id"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3;default:'ARS'" json:"currency"`

	// Referencia del proveedor externo. Se escribe una sola vez, después
	// queda inmutable; NULL mientras el pago está esperando referencia.
	PreferenceID *string `gorm:"size:100" json:"preference_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
