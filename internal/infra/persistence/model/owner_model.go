package model

import "time"

// OwnerModel is the GORM-specific struct for the 'duenos' table.
type OwnerModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Nombre        string    `gorm:"type:varchar(100);not null"`
	Apellido      string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(100);not null"`
	Telefono      string    `gorm:"type:varchar(100)"`
	Direccion     string    `gorm:"type:varchar(100)"`
	Ciudad        string    `gorm:"type:varchar(100)"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`

	Mascotas []PetModel `gorm:"foreignKey:DuenoID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "duenos"
}
