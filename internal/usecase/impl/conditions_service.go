package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/risk"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sourcegraph/conc"
	"go.uber.org/fx"
)

const (
	defaultConditionsTTL      = 6 * time.Hour
	defaultNearbySOSRadiusM   = 5000.0
	heatCellHalfSizeDegrees   = 0.02
	heatCellSpacingDegrees    = 0.05
	defaultAdvisoryLanguage   = "en"
	providerWeather           = "weather"
	providerMarine            = "marine"
	providerAdvisory          = "advisory"
	mockWeatherWindKnots      = 12
	mockWeatherDescription    = "partly cloudy"
	mockMarineMinWaveMeters   = 0.8
	mockMarineWaveRangeMeters = 1.2
)

// heatGrid holds the cell offsets (lat, lng) around the requested position.
var heatGrid = [...][2]float64{
	{0, 0},
	{0, heatCellSpacingDegrees},
	{0, -heatCellSpacingDegrees},
	{heatCellSpacingDegrees, 0},
	{-heatCellSpacingDegrees, 0},
}

type conditionsService struct {
	weather      service.WeatherProvider
	marine       service.MarineProvider
	advisor      service.AdvisoryGenerator
	cache        service.Cache
	sosRepo      repository.SOSRepository
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	ttl          time.Duration
	nearbyRadius float64
	logger       *slog.Logger

	randMu sync.Mutex
	rand   RandSource
}

// ConditionsServiceParams holds dependencies for ConditionsService, injected by Fx.
type ConditionsServiceParams struct {
	fx.In

	Weather  service.WeatherProvider
	Marine   service.MarineProvider
	Advisor  service.AdvisoryGenerator
	Cache    service.Cache
	SOSRepo  repository.SOSRepository
	Clock    clockwork.Clock
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
	Rand     RandSource `optional:"true"`
}

// NewConditionsService creates the weather, sea state and advisory use case.
func NewConditionsService(params ConditionsServiceParams) usecase.ConditionsUsecase {
	srv := &conditionsService{
		weather:      params.Weather,
		marine:       params.Marine,
		advisor:      params.Advisor,
		cache:        params.Cache,
		sosRepo:      params.SOSRepo,
		clock:        params.Clock,
		metrics:      params.Metrics,
		ttl:          defaultConditionsTTL,
		nearbyRadius: defaultNearbySOSRadiusM,
		logger:       params.Logger,
		rand:         params.Rand,
	}
	if cfg := params.Config; cfg != nil {
		if cfg.Cache != nil && cfg.Cache.TTL > 0 {
			srv.ttl = cfg.Cache.TTL
		}
		if cfg.Advisory != nil && cfg.Advisory.NearbyRadiusM > 0 {
			srv.nearbyRadius = cfg.Advisory.NearbyRadiusM
		}
	}
	if srv.rand == nil {
		seed := uint64(params.Clock.Now().UnixNano())
		srv.rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	return srv
}

func (srv *conditionsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentConditions fetches weather and sea state concurrently and scores them.
// Provider failures degrade to the last cached reading, then to mock values.
func (srv *conditionsService) CurrentConditions(ctx context.Context, lat, lng float64) (*entity.Conditions, error) {
	at := geo.Coordinate{Lat: lat, Lng: lng}
	if !at.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	var (
		weather *entity.Weather
		marine  *entity.Marine
		wg      conc.WaitGroup
	)
	wg.Go(func() { weather = srv.weatherAt(ctx, at) })
	wg.Go(func() { marine = srv.marineAt(ctx, at) })
	wg.Wait()

	score := risk.Score(risk.Inputs{
		WindKnots:  &weather.WindKnots,
		WaveMeters: &marine.WaveHeightMeters,
		Tide:       marine.Tide,
	})

	return &entity.Conditions{
		Lat:              lat,
		Lng:              lng,
		WindKnots:        weather.WindKnots,
		WaveHeightMeters: marine.WaveHeightMeters,
		Tide:             marine.Tide,
		Description:      weather.Description,
		RiskScore:        score,
		RiskColor:        risk.Color(score),
		WeatherSource:    weather.Source,
		MarineSource:     marine.Source,
		FetchedAt:        srv.clock.Now(),
	}, nil
}

func (srv *conditionsService) weatherAt(ctx context.Context, at geo.Coordinate) *entity.Weather {
	return withFallback(ctx, srv, providerWeather, at,
		func() (*entity.Weather, error) { return srv.weather.CurrentWeather(ctx, at) },
		func(w *entity.Weather, src entity.DataSource) { w.Source = src },
		mockWeather)
}

func (srv *conditionsService) marineAt(ctx context.Context, at geo.Coordinate) *entity.Marine {
	return withFallback(ctx, srv, providerMarine, at,
		func() (*entity.Marine, error) { return srv.marine.SeaState(ctx, at) },
		func(m *entity.Marine, src entity.DataSource) { m.Source = src },
		srv.mockMarine)
}

// withFallback runs fetch, caching live results under a position key. On
// failure it serves the cached reading, or the mock when nothing is cached.
func withFallback[T any](
	ctx context.Context,
	srv *conditionsService,
	provider string,
	at geo.Coordinate,
	fetch func() (*T, error),
	setSource func(*T, entity.DataSource),
	mock func() *T,
) *T {
	key := fmt.Sprintf("%s:%.2f,%.2f", provider, at.Lat, at.Lng)

	live, err := fetch()
	if err == nil && live != nil {
		setSource(live, entity.SourceLive)
		if raw, mErr := json.Marshal(live); mErr == nil {
			if sErr := srv.cache.Set(ctx, key, raw, srv.ttl); sErr != nil {
				srv.log(ctx).Warn("Failed to cache provider reading", slog.String("provider", provider), slog.Any("error", sErr))
			}
		}

		return live
	}
	if err != nil && !errors.Is(err, service.ErrProviderNotConfigured) {
		srv.log(ctx).Warn("Provider unavailable, degrading", slog.String("provider", provider), slog.Any("error", err))
	}

	raw, ok, cErr := srv.cache.Get(ctx, key)
	if cErr != nil {
		srv.log(ctx).Warn("Failed to read provider cache", slog.String("provider", provider), slog.Any("error", cErr))
	}
	if ok {
		var cached T
		if json.Unmarshal(raw, &cached) == nil {
			setSource(&cached, entity.SourceCached)
			srv.metrics.ProviderFallbacks.WithLabelValues(provider, string(entity.SourceCached)).Inc()

			return &cached
		}
	}

	srv.metrics.ProviderFallbacks.WithLabelValues(provider, string(entity.SourceMock)).Inc()
	m := mock()
	setSource(m, entity.SourceMock)

	return m
}

func mockWeather() *entity.Weather {
	return &entity.Weather{WindKnots: mockWeatherWindKnots, Description: mockWeatherDescription}
}

func (srv *conditionsService) mockMarine() *entity.Marine {
	srv.randMu.Lock()
	wave := mockMarineMinWaveMeters + srv.rand.Float64()*mockMarineWaveRangeMeters
	roll := srv.rand.Float64()
	srv.randMu.Unlock()

	tide := entity.TideSlack
	switch {
	case roll < 0.5:
		tide = entity.TideRising
	case roll < 0.85:
		tide = entity.TideFalling
	}

	return &entity.Marine{WaveHeightMeters: math.Round(wave*10) / 10, Tide: tide}
}

// HeatMap returns five scored cells around the position as GeoJSON polygons.
func (srv *conditionsService) HeatMap(ctx context.Context, lat, lng float64) (*geojson.FeatureCollection, error) {
	cond, err := srv.CurrentConditions(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for i, offset := range heatGrid {
		cLat := lat + offset[0]
		cLng := lng + offset[1]
		d := heatCellHalfSizeDegrees
		ring := orb.Ring{
			{cLng - d, cLat - d},
			{cLng + d, cLat - d},
			{cLng + d, cLat + d},
			{cLng - d, cLat + d},
			{cLng - d, cLat - d},
		}

		f := geojson.NewFeature(orb.Polygon{ring})
		f.ID = fmt.Sprintf("cell-%d", i)
		f.Properties["score"] = cond.RiskScore
		f.Properties["color"] = cond.RiskColor
		fc.Append(f)
	}

	return fc, nil
}

// Advisory generates a short safety brief for the position. Identical inputs
// are served from cache and any generator failure yields an empty brief.
func (srv *conditionsService) Advisory(ctx context.Context, lat, lng float64, lang string) (*entity.Advisory, error) {
	cond, err := srv.CurrentConditions(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = defaultAdvisoryLanguage
	}

	nearby, err := srv.nearbySOS(ctx, geo.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		return nil, err
	}

	advisory := &entity.Advisory{Language: lang, NearbySOS: nearby}
	key := AdvisoryCacheKey(cond.WindKnots, cond.WaveHeightMeters, cond.Tide, nearby, lang)

	if raw, ok, cErr := srv.cache.Get(ctx, key); cErr == nil && ok {
		advisory.Text = string(raw)
		advisory.Cached = true

		return advisory, nil
	}

	text, err := srv.advisor.GenerateAdvisory(ctx, advisoryPrompt(cond, nearby, lang))
	if err != nil {
		if !errors.Is(err, service.ErrProviderNotConfigured) {
			srv.log(ctx).Warn("Advisory generation failed", slog.Any("error", err))
		}
		srv.metrics.ProviderFallbacks.WithLabelValues(providerAdvisory, string(entity.SourceMock)).Inc()

		return advisory, nil
	}

	advisory.Text = strings.TrimSpace(text)
	if advisory.Text != "" {
		if sErr := srv.cache.Set(ctx, key, []byte(advisory.Text), srv.ttl); sErr != nil {
			srv.log(ctx).Warn("Failed to cache advisory", slog.Any("error", sErr))
		}
	}

	return advisory, nil
}

func (srv *conditionsService) nearbySOS(ctx context.Context, at geo.Coordinate) (int, error) {
	events, err := srv.sosRepo.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list sos events")
	}

	n := 0
	for _, e := range events {
		if geo.Within(at, e.Position(), srv.nearbyRadius) {
			n++
		}
	}

	return n, nil
}

// AdvisoryCacheKey buckets the inputs so small drifts reuse one advisory.
func AdvisoryCacheKey(windKnots, waveMeters float64, tide entity.TideState, nearbySOS int, lang string) string {
	return fmt.Sprintf("advisory:%d|%d|%s|%d|%s",
		int(math.Round(windKnots)), int(math.Round(waveMeters*10)), tide, nearbySOS, lang)
}

func advisoryPrompt(cond *entity.Conditions, nearbySOS int, lang string) string {
	return fmt.Sprintf("Create a concise safety brief for small fishing boats.\n"+
		"Wind: %g kt, Waves: %g m, Tide: %s.\n"+
		"Nearby SOS: %d.\n"+
		"Output 2-3 short bullet points, simple language, locale %s.",
		cond.WindKnots, cond.WaveHeightMeters, cond.Tide, nearbySOS, lang)
}
