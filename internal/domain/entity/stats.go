package entity

// FleetStats is the authority dashboard summary.
type FleetStats struct {
	TotalBoats     int                `json:"total_boats"`
	ByStatus       map[BoatStatus]int `json:"by_status"`
	ActiveAlerts   int                `json:"active_alerts"`
	RecentSOSCalls int                `json:"recent_sos_calls"`
	OfflineQueued  int                `json:"offline_queued"`
	ZonesMonitored int                `json:"zones_monitored"`
}
