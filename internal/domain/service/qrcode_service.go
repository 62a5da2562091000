package service

import (
	"tidewise/internal/domain/entity"
)

// DistressQRData is the payload a rescue crew reads from an SOS QR code.
type DistressQRData struct {
	SOSID  string `json:"sos_id"`
	BoatID string `json:"boat_id"`
	GeoURI string `json:"geo"`
	Type   string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDistressQR renders a PNG QR code locating the distress event
	GenerateDistressQR(event *entity.SOSEvent) ([]byte, error)

	// ParseDistressQR parses QR code text back into its payload
	ParseDistressQR(qrData string) (*DistressQRData, error)
}
