// Package model holds the GORM table mappings of the tracker store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BoatModel is the GORM-specific struct for the 'boats' table.
// Ordinal keeps registration order and is never rewritten by an upsert.
type BoatModel struct {
	ID        string  `gorm:"type:varchar(64);primary_key"`
	Ordinal   int64   `gorm:"autoIncrement;not null;uniqueIndex"`
	Lat       float64 `gorm:"type:double precision;not null"`
	Lng       float64 `gorm:"type:double precision;not null"`
	Status    string  `gorm:"type:varchar(16);not null"`
	Zone      string  `gorm:"type:varchar(64)"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoatModel) TableName() string {
	return "boats"
}

// SOSEventModel is the GORM-specific struct for the 'sos_events' table.
type SOSEventModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Seq    uint64    `gorm:"autoIncrement;not null;uniqueIndex"`
	BoatID string    `gorm:"type:varchar(64);not null;index"`
	Lat    float64   `gorm:"type:double precision;not null"`
	Lng    float64   `gorm:"type:double precision;not null"`
	Time   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SOSEventModel) TableName() string {
	return "sos_events"
}

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Seq     uint64    `gorm:"autoIncrement;not null;uniqueIndex"`
	Type    string    `gorm:"type:varchar(32);not null"`
	BoatID  string    `gorm:"type:varchar(64);not null"`
	Lat     float64   `gorm:"type:double precision;not null"`
	Lng     float64   `gorm:"type:double precision;not null"`
	Time    time.Time `gorm:"not null"`
	Message string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// All lists every table model, in migration order.
func All() []any {
	return []any{
		&BoatModel{},
		&SOSEventModel{},
		&NotificationModel{},
		&BoatDeviceModel{},
	}
}
