package model

import (
	"time"

	"github.com/google/uuid"
)

// BoatDeviceModel is the GORM-specific struct for the 'boat_devices' table.
// It represents a handset aboard a boat registered for push alerts.
type BoatDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BoatID    string    `gorm:"type:varchar(64);not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoatDeviceModel) TableName() string {
	return "boat_devices"
}
