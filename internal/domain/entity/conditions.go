package entity

import "time"

// TideState is the simplified tide trend.
type TideState string

const (
	TideRising  TideState = "rising"
	TideFalling TideState = "falling"
	TideSlack   TideState = "slack"
)

// DataSource tells clients how fresh a reading is.
type DataSource string

const (
	SourceLive   DataSource = "live"
	SourceCached DataSource = "cached"
	SourceMock   DataSource = "mock"
)

// Weather is the wind reading from the weather provider.
type Weather struct {
	WindKnots   float64    `json:"wind_kt"`
	Description string     `json:"description"`
	Source      DataSource `json:"source"`
}

// Marine is the sea-state reading from the marine provider.
type Marine struct {
	WaveHeightMeters float64    `json:"wave_m"`
	Tide             TideState  `json:"tide"`
	Source           DataSource `json:"source"`
}

// Conditions combines weather and sea state at a position.
type Conditions struct {
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	WindKnots        float64    `json:"wind_kt"`
	WaveHeightMeters float64    `json:"wave_m"`
	Tide             TideState  `json:"tide"`
	Description      string     `json:"description"`
	RiskScore        int        `json:"risk_score"`
	RiskColor        string     `json:"risk_color"`
	WeatherSource    DataSource `json:"weather_source"`
	MarineSource     DataSource `json:"marine_source"`
	FetchedAt        time.Time  `json:"fetched_at"`
}

// Advisory is a generated safety advisory.
type Advisory struct {
	Text      string `json:"text"`
	Language  string `json:"language"`
	Cached    bool   `json:"cached"`
	NearbySOS int    `json:"nearby_sos"`
}
