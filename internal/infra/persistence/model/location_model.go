package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// Coordinates are numeric(13,10): exact decimals, never floats.
type LocationModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	MascotaID int64           `gorm:"not null;index"`
	Latitude  decimal.Decimal `gorm:"type:numeric(13,10);not null"`
	Longitude decimal.Decimal `gorm:"type:numeric(13,10);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	IsActive  bool            `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
