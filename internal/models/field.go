package models

import (
	"time"

	"gorm.io/datatypes"
)

type Field struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name          string `gorm:"size:255;not null" json:"name"`
	Address       string `gorm:"type:text" json:"address"`
	ContactNumber string `gorm:"size:20" json:"contact_number"`
	Description   string `gorm:"type:text" json:"description"`

	PricePerHour float64 `gorm:"type:decimal(10,2);check:price_per_hour >= 0" json:"price_per_hour"`

	// WGS84 coordinate of the pitch.
	Longitude float64 `gorm:"not null" json:"longitude"`
	Latitude  float64 `gorm:"not null" json:"latitude"`

	Facilities datatypes.JSONMap `gorm:"type:jsonb" json:"facilities"`
	PictureKey string            `gorm:"size:255" json:"picture_key"`
	Active     bool              `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
