package usecase

import (
	"context"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/geo"

	"github.com/paulmach/orb/geojson"
)

// NavigationUsecase holds geofencing and route heuristics.
type NavigationUsecase interface {
	// CheckPosition reports danger zones containing the position, the nearest
	// safe zone, and the localized warning when in danger.
	CheckPosition(ctx context.Context, lat, lng float64, lang string) (*entity.PositionCheck, error)

	// PlanRoute suggests a passage, detouring out of any danger zone containing start.
	PlanRoute(ctx context.Context, start, destination geo.Coordinate, windKnots float64) (*entity.RoutePlan, error)

	// Zones returns danger and safe zones as GeoJSON points with radius properties.
	Zones(ctx context.Context) *geojson.FeatureCollection

	// Harbors returns the safe harbors.
	Harbors(ctx context.Context) []*entity.Harbor
}
