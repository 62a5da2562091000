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

const knotsPerMeterPerSecond = 1.94384

// OpenWeatherClient implements service.WeatherProvider using the OpenWeatherMap current weather API.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenWeatherClient creates a weather client from the weather config section.
func NewOpenWeatherClient(cfg *config.ProviderConfig, logger *slog.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// CurrentWeather reads wind speed in knots, rounded to 0.1, and the sky description.
func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, at geo.Coordinate) (*entity.Weather, error) {
	if c.apiKey == "" {
		return nil, service.ErrProviderNotConfigured
	}

	params := url.Values{
		"lat":   {strconv.FormatFloat(at.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(at.Lng, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.DebugContext(ctx, "Provider rejected request",
			slog.String("provider", "openweathermap"),
			slog.Int("status", resp.StatusCode))

		return nil, errors.Errorf("openweathermap API error: status %d: %s", resp.StatusCode, body)
	}

	var owm weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owm); err != nil {
		return nil, errors.Wrap(err, "decode weather response")
	}

	w := &entity.Weather{
		WindKnots: math.Round(owm.Wind.Speed*knotsPerMeterPerSecond*10) / 10,
	}
	if len(owm.Weather) > 0 {
		w.Description = owm.Weather[0].Description
	}

	return w, nil
}

// OpenWeatherMap API response types.

type weatherResponse struct {
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}
