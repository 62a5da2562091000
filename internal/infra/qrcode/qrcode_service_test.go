package qrcode

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"tidewise/config"
	"tidewise/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *entity.SOSEvent {
	return &entity.SOSEvent{
		ID:     uuid.Must(uuid.NewV7()),
		BoatID: "F-001",
		Time:   time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC),
		Lat:    16.45,
		Lng:    80.65,
	}
}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
	}{{"L"}, {"M"}, {"Q"}, {"H"}, {"invalid"}}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level}})
			qr, err := svc.GenerateDistressQR(sampleEvent())
			require.NoError(t, err)
			assert.NotEmpty(t, qr)
		})
	}
}

func TestQRCodeService_GenerateDistressQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size}})

		qr, err := svc.GenerateDistressQR(sampleEvent())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qr))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}

	qr, err := NewQRCodeService(nil).GenerateDistressQR(sampleEvent())
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(qr))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_ParseDistressQR(t *testing.T) {
	svc := NewQRCodeService(nil)
	event := sampleEvent()

	data, err := svc.ParseDistressQR(`{"sos_id":"` + event.ID.String() + `","boat_id":"F-001","geo":"geo:16.45000,80.65000","type":"sos"}`)
	require.NoError(t, err)
	assert.Equal(t, event.ID.String(), data.SOSID)
	assert.Equal(t, "F-001", data.BoatID)
	assert.Equal(t, GeoURI(16.45, 80.65), data.GeoURI)

	invalid := []string{
		`not json`,
		`{"sos_id":"x","geo":"geo:1,2","type":"subscription"}`,
		`{"geo":"geo:1,2","type":"sos"}`,
		`{"sos_id":"x","geo":"16.45,80.65","type":"sos"}`,
	}
	for _, raw := range invalid {
		_, err := svc.ParseDistressQR(raw)
		assert.Error(t, err, raw)
	}
}

func TestGeoURI(t *testing.T) {
	assert.Equal(t, "geo:16.45000,80.65000", GeoURI(16.45, 80.65))
	assert.Equal(t, "geo:-0.50000,-179.99999", GeoURI(-0.5, -179.99999))
}
