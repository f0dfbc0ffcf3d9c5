package models

type Barrio struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
}
