package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre   string `gorm:"size:100;not null" json:"nombre"`
	Apellido string `gorm:"size:100" json:"apellido"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefono string `gorm:"size:20" json:"telefono"`

	ContrasenaHash string `gorm:"size:255;not null" json:"-"`

	Rol Role `gorm:"size:20;default:'cliente'" json:"rol"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
