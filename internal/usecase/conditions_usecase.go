package usecase

import (
	"context"

	"tidewise/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// ConditionsUsecase serves weather, sea state, risk and advisories.
// None of its operations fail because a provider is down.
type ConditionsUsecase interface {
	// CurrentConditions returns weather and sea state with a risk score.
	CurrentConditions(ctx context.Context, lat, lng float64) (*entity.Conditions, error)

	// HeatMap returns the risk grid around (lat, lng) as GeoJSON polygons.
	HeatMap(ctx context.Context, lat, lng float64) (*geojson.FeatureCollection, error)

	// Advisory returns a short safety advisory in lang. An unavailable model yields empty text.
	Advisory(ctx context.Context, lat, lng float64, lang string) (*entity.Advisory, error)
}
