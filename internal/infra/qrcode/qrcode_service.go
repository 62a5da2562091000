package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	distressQRType  = "sos"
	geoURIScheme    = "geo:"
	geoURIPrecision = 5
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDistressQR renders a PNG carrying the event ids and a geo: URI of the
// distress position, readable by any phone map app.
func (s *qrcodeService) GenerateDistressQR(event *entity.SOSEvent) ([]byte, error) {
	data := service.DistressQRData{
		SOSID:  event.ID.String(),
		BoatID: event.BoatID,
		GeoURI: GeoURI(event.Lat, event.Lng),
		Type:   distressQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDistressQR parses QR code text back into its payload
func (s *qrcodeService) ParseDistressQR(qrData string) (*service.DistressQRData, error) {
	var data service.DistressQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != distressQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.SOSID == "" || !strings.HasPrefix(data.GeoURI, geoURIScheme) {
		return nil, fmt.Errorf("incomplete distress QR payload")
	}

	return &data, nil
}

// GeoURI formats an RFC 5870 geo URI.
func GeoURI(lat, lng float64) string {
	return geoURIScheme +
		strconv.FormatFloat(lat, 'f', geoURIPrecision, 64) + "," +
		strconv.FormatFloat(lng, 'f', geoURIPrecision, 64)
}
