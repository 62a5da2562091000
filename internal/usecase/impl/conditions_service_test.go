package impl

import (
	"context"
	"fmt"
	"testing"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/risk"
	"tidewise/internal/domain/service"
	"tidewise/internal/infra/cache"
	"tidewise/internal/infra/metrics"
	mockRepo "tidewise/internal/mocks/repository"
	mockService "tidewise/internal/mocks/service"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conditionsServiceFixtures struct {
	service usecase.ConditionsUsecase
	weather *mockService.MockWeatherProvider
	marine  *mockService.MockMarineProvider
	advisor *mockService.MockAdvisoryGenerator
	sosRepo *mockRepo.MockSOSRepository
	cache   service.Cache
	metrics *metrics.Metrics
}

func createTestConditionsService(t *testing.T, draws ...float64) conditionsServiceFixtures {
	t.Helper()

	clock := clockwork.NewFakeClockAt(testNow)
	f := conditionsServiceFixtures{
		weather: mockService.NewMockWeatherProvider(t),
		marine:  mockService.NewMockMarineProvider(t),
		advisor: mockService.NewMockAdvisoryGenerator(t),
		sosRepo: mockRepo.NewMockSOSRepository(t),
		cache:   cache.NewMemoryCache(clock),
		metrics: metrics.NewMetricsForTesting(),
	}
	f.service = NewConditionsService(ConditionsServiceParams{
		Weather: f.weather,
		Marine:  f.marine,
		Advisor: f.advisor,
		Cache:   f.cache,
		SOSRepo: f.sosRepo,
		Clock:   clock,
		Metrics: f.metrics,
		Config:  &config.Config{Advisory: &config.AdvisoryConfig{NearbyRadiusM: 5000}},
		Logger:  newDiscardLogger(),
		Rand:    &scriptedRand{floats: draws},
	})

	return f
}

var harborCoord = geo.Coordinate{Lat: 16.5, Lng: 80.6}

func (f conditionsServiceFixtures) liveReadings() {
	f.weather.EXPECT().CurrentWeather(mock.Anything, harborCoord).
		Return(&entity.Weather{WindKnots: 12, Description: "clear sky"}, nil).Once()
	f.marine.EXPECT().SeaState(mock.Anything, harborCoord).
		Return(&entity.Marine{WaveHeightMeters: 1.2, Tide: entity.TideRising}, nil).Once()
}

func TestConditionsService_CurrentConditions_Live(t *testing.T) {
	f := createTestConditionsService(t)
	f.liveReadings()

	cond, err := f.service.CurrentConditions(context.Background(), 16.5, 80.6)
	require.NoError(t, err)

	assert.InDelta(t, 12, cond.WindKnots, 1e-9)
	assert.InDelta(t, 1.2, cond.WaveHeightMeters, 1e-9)
	assert.Equal(t, entity.TideRising, cond.Tide)
	assert.Equal(t, "clear sky", cond.Description)
	assert.Equal(t, 37, cond.RiskScore)
	assert.Equal(t, risk.ColorModerate, cond.RiskColor)
	assert.Equal(t, entity.SourceLive, cond.WeatherSource)
	assert.Equal(t, entity.SourceLive, cond.MarineSource)
	assert.Equal(t, testNow, cond.FetchedAt)

	_, ok, err := f.cache.Get(context.Background(), "weather:16.50,80.60")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConditionsService_CurrentConditions_FallsBackToCache(t *testing.T) {
	f := createTestConditionsService(t)
	ctx := context.Background()
	f.liveReadings()

	_, err := f.service.CurrentConditions(ctx, 16.5, 80.6)
	require.NoError(t, err)

	f.weather.EXPECT().CurrentWeather(mock.Anything, harborCoord).Return(nil, errors.New("timeout")).Once()
	f.marine.EXPECT().SeaState(mock.Anything, harborCoord).Return(nil, errors.New("HTTP 503")).Once()

	cond, err := f.service.CurrentConditions(ctx, 16.5, 80.6)
	require.NoError(t, err)
	assert.Equal(t, entity.SourceCached, cond.WeatherSource)
	assert.Equal(t, entity.SourceCached, cond.MarineSource)
	assert.InDelta(t, 12, cond.WindKnots, 1e-9)
	assert.Equal(t, 37, cond.RiskScore)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ProviderFallbacks.WithLabelValues("weather", "cached")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ProviderFallbacks.WithLabelValues("marine", "cached")), 0)
}

func TestConditionsService_CurrentConditions_MockWhenUnconfigured(t *testing.T) {
	// wave draw 0.5 -> 0.8+0.6 m, tide draw 0.3 -> rising
	f := createTestConditionsService(t, 0.5, 0.3)
	f.weather.EXPECT().CurrentWeather(mock.Anything, harborCoord).Return(nil, service.ErrProviderNotConfigured)
	f.marine.EXPECT().SeaState(mock.Anything, harborCoord).Return(nil, service.ErrProviderNotConfigured)

	cond, err := f.service.CurrentConditions(context.Background(), 16.5, 80.6)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceMock, cond.WeatherSource)
	assert.Equal(t, entity.SourceMock, cond.MarineSource)
	assert.InDelta(t, 12, cond.WindKnots, 1e-9)
	assert.Equal(t, "partly cloudy", cond.Description)
	assert.InDelta(t, 1.4, cond.WaveHeightMeters, 1e-9)
	assert.Equal(t, entity.TideRising, cond.Tide)
	assert.Equal(t, 39, cond.RiskScore)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ProviderFallbacks.WithLabelValues("marine", "mock")), 0)
}

func TestConditionsService_MockTideBands(t *testing.T) {
	tests := []struct {
		roll float64
		want entity.TideState
	}{
		{0.49, entity.TideRising},
		{0.5, entity.TideFalling},
		{0.84, entity.TideFalling},
		{0.85, entity.TideSlack},
	}

	for _, tt := range tests {
		f := createTestConditionsService(t, 0, tt.roll)
		f.weather.EXPECT().CurrentWeather(mock.Anything, mock.Anything).Return(nil, service.ErrProviderNotConfigured)
		f.marine.EXPECT().SeaState(mock.Anything, mock.Anything).Return(nil, service.ErrProviderNotConfigured)

		cond, err := f.service.CurrentConditions(context.Background(), 16.5, 80.6)
		require.NoError(t, err)
		assert.Equal(t, tt.want, cond.Tide, "roll %v", tt.roll)
		assert.InDelta(t, 0.8, cond.WaveHeightMeters, 1e-9)
	}
}

func TestConditionsService_CurrentConditions_InvalidCoordinate(t *testing.T) {
	f := createTestConditionsService(t)

	_, err := f.service.CurrentConditions(context.Background(), 95, 80.6)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestConditionsService_HeatMap(t *testing.T) {
	f := createTestConditionsService(t)
	f.liveReadings()

	fc, err := f.service.HeatMap(context.Background(), 16.5, 80.6)
	require.NoError(t, err)
	require.Len(t, fc.Features, 5)

	for i, feature := range fc.Features {
		assert.Equal(t, fmt.Sprintf("cell-%d", i), feature.ID)
		assert.Equal(t, 37, feature.Properties["score"])
		assert.Equal(t, risk.ColorModerate, feature.Properties["color"])
	}

	centre, ok := fc.Features[0].Geometry.(orb.Polygon)
	require.True(t, ok)
	ring := centre[0]
	require.Len(t, ring, 5)
	assert.InDelta(t, 80.58, ring[0].Lon(), 1e-9)
	assert.InDelta(t, 16.48, ring[0].Lat(), 1e-9)
	assert.InDelta(t, 80.62, ring[2].Lon(), 1e-9)
	assert.InDelta(t, 16.52, ring[2].Lat(), 1e-9)
	assert.Equal(t, ring[0], ring[4])

	north := fc.Features[3].Geometry.(orb.Polygon)
	assert.InDelta(t, 16.55, north.Bound().Center().Lat(), 1e-9)
}

func TestConditionsService_Advisory_GeneratesThenCaches(t *testing.T) {
	f := createTestConditionsService(t)
	ctx := context.Background()

	events := []*entity.SOSEvent{
		{ID: uuid.New(), BoatID: "F-001", Lat: 16.51, Lng: 80.61},
		{ID: uuid.New(), BoatID: "F-002", Lat: 17.5, Lng: 80.6},
	}
	f.sosRepo.EXPECT().FindAll(ctx).Return(events, nil).Times(2)
	f.liveReadings()
	f.liveReadings()

	prompt := "Create a concise safety brief for small fishing boats.\n" +
		"Wind: 12 kt, Waves: 1.2 m, Tide: rising.\n" +
		"Nearby SOS: 1.\n" +
		"Output 2-3 short bullet points, simple language, locale te."
	f.advisor.EXPECT().GenerateAdvisory(ctx, prompt).Return("  - Stay close to shore\n- Carry a radio  ", nil).Once()

	first, err := f.service.Advisory(ctx, 16.5, 80.6, "te")
	require.NoError(t, err)
	assert.Equal(t, "- Stay close to shore\n- Carry a radio", first.Text)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, first.NearbySOS)
	assert.Equal(t, "te", first.Language)

	second, err := f.service.Advisory(ctx, 16.5, 80.6, "te")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Text, second.Text)
}

func TestConditionsService_Advisory_GeneratorFailureIsEmpty(t *testing.T) {
	f := createTestConditionsService(t)
	ctx := context.Background()

	f.sosRepo.EXPECT().FindAll(ctx).Return(nil, nil)
	f.liveReadings()
	f.advisor.EXPECT().GenerateAdvisory(ctx, mock.Anything).Return("", errors.New("quota exceeded"))

	advisory, err := f.service.Advisory(ctx, 16.5, 80.6, "")
	require.NoError(t, err)
	assert.Empty(t, advisory.Text)
	assert.Equal(t, "en", advisory.Language)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ProviderFallbacks.WithLabelValues("advisory", "mock")), 0)
}

func TestAdvisoryCacheKey(t *testing.T) {
	assert.Equal(t, "advisory:12|12|rising|0|en", AdvisoryCacheKey(12.4, 1.21, entity.TideRising, 0, "en"))
	assert.Equal(t,
		AdvisoryCacheKey(11.6, 1.24, entity.TideSlack, 2, "hi"),
		AdvisoryCacheKey(12.2, 1.16, entity.TideSlack, 2, "hi"))
}
