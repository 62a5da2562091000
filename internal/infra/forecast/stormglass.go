package forecast

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultWaveHeightMeters = 1.0
	risingAboveMeters       = 1.5
	slackBelowMeters        = 0.9
)

// StormGlassClient implements service.MarineProvider using the StormGlass point API.
type StormGlassClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStormGlassClient creates a marine client from the marine config section.
func NewStormGlassClient(cfg *config.ProviderConfig, logger *slog.Logger) *StormGlassClient {
	return &StormGlassClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// SeaState reads the first forecast hour's wave height. The tide trend is
// derived from the wave height since the point API carries no tide data.
func (c *StormGlassClient) SeaState(ctx context.Context, at geo.Coordinate) (*entity.Marine, error) {
	if c.apiKey == "" {
		return nil, service.ErrProviderNotConfigured
	}

	params := url.Values{
		"lat":    {strconv.FormatFloat(at.Lat, 'f', -1, 64)},
		"lng":    {strconv.FormatFloat(at.Lng, 'f', -1, 64)},
		"params": {"waveHeight"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather/point?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create marine request")
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "marine request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.DebugContext(ctx, "Provider rejected request",
			slog.String("provider", "stormglass"),
			slog.Int("status", resp.StatusCode))

		return nil, errors.Errorf("stormglass API error: status %d: %s", resp.StatusCode, body)
	}

	var sg pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&sg); err != nil {
		return nil, errors.Wrap(err, "decode marine response")
	}

	wave := defaultWaveHeightMeters
	if len(sg.Hours) > 0 && sg.Hours[0].WaveHeight.SG != nil {
		wave = *sg.Hours[0].WaveHeight.SG
	}

	return &entity.Marine{
		WaveHeightMeters: math.Round(wave*10) / 10,
		Tide:             TideFromWaveHeight(wave),
	}, nil
}

// TideFromWaveHeight maps a wave height onto the simplified tide trend.
func TideFromWaveHeight(meters float64) entity.TideState {
	switch {
	case meters > risingAboveMeters:
		return entity.TideRising
	case meters < slackBelowMeters:
		return entity.TideSlack
	default:
		return entity.TideFalling
	}
}

// StormGlass API response types.

type pointResponse struct {
	Hours []struct {
		WaveHeight struct {
			SG *float64 `json:"sg"`
		} `json:"waveHeight"`
	} `json:"hours"`
}
