package impl

import (
	"context"
	"log/slog"
	"math"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// Route heuristics.
const (
	metersPerDegree        = 111320.0
	directSpeedKnots       = 10.0
	detourBaseSpeedKnots   = 12.0
	detourMinSpeedKnots    = 6.0
	strongWindKnots        = 20.0
	strongWindShiftDegrees = 0.03
)

type navigationService struct {
	dangerZones []*entity.Zone
	safeZones   []*entity.Zone
	harbors     []*entity.Harbor
	coast       config.CoastConfig
	voice       usecase.VoiceUsecase
	logger      *slog.Logger
}

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Voice  usecase.VoiceUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewNavigationService creates the geofencing and route planning use case.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	nav := params.Config.Navigate

	harbors := make([]*entity.Harbor, 0, len(nav.Harbors))
	for _, h := range nav.Harbors {
		harbors = append(harbors, &entity.Harbor{Name: h.Name, Lat: h.Lat, Lng: h.Lng})
	}

	return &navigationService{
		dangerZones: zonesFromConfig(nav.DangerZones, entity.ZoneKindDanger),
		safeZones:   zonesFromConfig(nav.SafeZones, entity.ZoneKindSafe),
		harbors:     harbors,
		coast:       nav.Coast,
		voice:       params.Voice,
		logger:      params.Logger,
	}
}

func zonesFromConfig(cfgs []config.ZoneConfig, kind entity.ZoneKind) []*entity.Zone {
	zones := make([]*entity.Zone, 0, len(cfgs))
	for _, z := range cfgs {
		zones = append(zones, &entity.Zone{
			ID:           z.ID,
			Name:         z.Name,
			Kind:         kind,
			Lat:          z.Lat,
			Lng:          z.Lng,
			RadiusMeters: z.RadiusM,
		})
	}

	return zones
}

func (srv *navigationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckPosition geofences the position. Entering a danger zone announces the
// localized warning; a failed announcement is logged and the check still returns.
func (srv *navigationService) CheckPosition(ctx context.Context, lat, lng float64, lang string) (*entity.PositionCheck, error) {
	at := geo.Coordinate{Lat: lat, Lng: lng}
	if !at.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	check := &entity.PositionCheck{
		Position:    at,
		DangerZones: make([]*entity.Zone, 0),
		NearCoast: math.Abs(lat-srv.coast.Lat) < srv.coast.LatSpan &&
			math.Abs(lng-srv.coast.Lng) < srv.coast.LngSpan,
	}
	for _, z := range srv.dangerZones {
		if z.Contains(at) {
			check.DangerZones = append(check.DangerZones, z)
		}
	}
	check.InDanger = len(check.DangerZones) > 0

	for _, z := range srv.safeZones {
		d := geo.HaversineMeters(at, z.Center())
		if check.NearestSafe == nil || d < check.NearestSafeM {
			check.NearestSafe = z
			check.NearestSafeM = d
		}
	}

	if check.InDanger {
		phrase, err := srv.voice.Announce(ctx, entity.PhraseDangerZone, lang)
		if err != nil {
			srv.log(ctx).Warn("Failed to announce danger zone warning", slog.Any("error", err))
			phrase, err = srv.voice.Phrase(ctx, entity.PhraseDangerZone, lang)
		}
		if err == nil {
			check.Warning = phrase.Text
			check.WarningLocale = phrase.Locale
		}
	}

	return check, nil
}

// PlanRoute plans start to destination. A start inside a danger zone first
// heads for the zone edge along the line from the zone centre.
func (srv *navigationService) PlanRoute(_ context.Context, start, destination geo.Coordinate, windKnots float64) (*entity.RoutePlan, error) {
	if !start.Valid() || !destination.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if math.IsNaN(windKnots) || windKnots < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("wind speed must be a non-negative number")
	}

	plan := &entity.RoutePlan{Start: start, Destination: destination}

	var active *entity.Zone
	for _, z := range srv.dangerZones {
		if z.Contains(start) {
			active = z

			break
		}
	}

	if active == nil {
		plan.Waypoints = []geo.Coordinate{start, destination}
		plan.DistanceMeters = geo.HaversineMeters(start, destination)
		plan.SpeedKnots = directSpeedKnots
		plan.BearingDegrees = geo.BearingDegrees(start, destination)
	} else {
		detour := zoneExit(active, start)
		if windKnots > strongWindKnots {
			detour.Lat += strongWindShiftDegrees
			detour.Lng += strongWindShiftDegrees
		}

		plan.Waypoints = []geo.Coordinate{start, detour, destination}
		plan.Detour = true
		plan.AvoidedZone = active.ID
		plan.DistanceMeters = geo.HaversineMeters(start, detour) + geo.HaversineMeters(detour, destination)
		plan.SpeedKnots = math.Max(detourMinSpeedKnots,
			detourBaseSpeedKnots-math.Min(detourMinSpeedKnots, math.Abs(windKnots-detourBaseSpeedKnots)))
		plan.BearingDegrees = geo.BearingDegrees(start, detour)
	}

	plan.DurationMinutes = geo.EstimateDurationMinutes(plan.DistanceMeters, plan.SpeedKnots)
	plan.Heading = geo.CardinalFromBearing(plan.BearingDegrees)

	return plan, nil
}

// zoneExit projects from the zone centre through from onto the zone edge,
// working in plain degrees. A start on the centre exits due north.
func zoneExit(z *entity.Zone, from geo.Coordinate) geo.Coordinate {
	dx := from.Lng - z.Lng
	dy := from.Lat - z.Lat
	ux, uy := 0.0, 1.0
	if l := math.Hypot(dx, dy); l > 0 {
		ux, uy = dx/l, dy/l
	}
	reach := z.RadiusMeters / metersPerDegree

	return geo.Coordinate{Lat: z.Lat + uy*reach, Lng: z.Lng + ux*reach}
}

// Zones returns every zone as a centre point carrying its radius.
func (srv *navigationService) Zones(_ context.Context) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, group := range [][]*entity.Zone{srv.dangerZones, srv.safeZones} {
		for _, z := range group {
			f := geojson.NewFeature(z.Center().Point())
			f.ID = z.ID
			f.Properties["name"] = z.Name
			f.Properties["kind"] = string(z.Kind)
			f.Properties["radius_m"] = z.RadiusMeters
			fc.Append(f)
		}
	}

	return fc
}

func (srv *navigationService) Harbors(_ context.Context) []*entity.Harbor {
	return srv.harbors
}
