package model

import "time"

// PetModel is the GORM-specific struct for the 'mascotas' table.
// Imagen stores the photo as base64 text, matching the original schema.
type PetModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Nombre          string     `gorm:"type:varchar(100);not null"`
	Peso            float64    `gorm:"type:numeric(5,2)"`
	Edad            int        `gorm:"not null"`
	Especie         string     `gorm:"type:varchar(100)"`
	Raza            string     `gorm:"type:varchar(100)"`
	Imagen          string     `gorm:"type:text"`
	FechaNacimiento *time.Time `gorm:"type:date"`
	FechaCreacion   time.Time  `gorm:"autoCreateTime"`
	DuenoID         int64      `gorm:"not null;index"`

	Dueno     *OwnerModel     `gorm:"foreignKey:DuenoID"`
	Locations []LocationModel `gorm:"foreignKey:MascotaID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "mascotas"
}
