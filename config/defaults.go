package config

// DefaultSeedBoats is the demo fleet off the Krishna delta.
func DefaultSeedBoats() []SeedBoat {
	return []SeedBoat{
		{ID: "127", Lat: 16.50, Lng: 80.60, Status: "safe", Zone: "A"},
		{ID: "089", Lat: 16.40, Lng: 80.70, Status: "safe", Zone: "B"},
		{ID: "203", Lat: 16.60, Lng: 80.50, Status: "warning", Zone: "C"},
	}
}

// DefaultSeedUsers are the demo accounts.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Email: "fisherman@tidewise.com", Password: "fisherman123", Name: "Rajesh Kumar", Role: "fisherman", BoatID: "F-001"},
		{Email: "fisherman2@tidewise.com", Password: "fisherman123", Name: "Suresh Patel", Role: "fisherman", BoatID: "F-002"},
		{Email: "authority@tidewise.com", Password: "authority123", Name: "Coastal Authority", Role: "authority", BoatID: "A-001"},
	}
}

// DefaultDangerZones are the restricted coastal waters between Vetapalem and the Krishna sanctuary.
func DefaultDangerZones() []ZoneConfig {
	return []ZoneConfig{
		{ID: "vetapalem-waters", Name: "Vetapalem Coastal Waters", Lat: 15.75, Lng: 80.35, RadiusM: 3000},
		{ID: "chirala-waters", Name: "Chirala Fishing Waters", Lat: 15.80, Lng: 80.40, RadiusM: 2500},
		{ID: "bapatla-waters", Name: "Bapatla High Risk Waters", Lat: 15.88, Lng: 80.52, RadiusM: 4000},
		{ID: "nizampatnam-waters", Name: "Nizampatnam Coastal Waters", Lat: 15.92, Lng: 80.70, RadiusM: 3000},
		{ID: "repalle-waters", Name: "Repalle Delta Waters", Lat: 16.08, Lng: 80.90, RadiusM: 3500},
		{ID: "avanigadda-waters", Name: "Avanigadda River Waters", Lat: 16.15, Lng: 81.00, RadiusM: 3000},
		{ID: "nagayalanka-waters", Name: "Nagayalanka Estuary Waters", Lat: 16.18, Lng: 81.10, RadiusM: 4000},
		{ID: "krishna-wls-waters", Name: "Krishna Wildlife Waters", Lat: 16.20, Lng: 81.20, RadiusM: 5000},
		{ID: "southern-waters", Name: "Southern Coastal Waters", Lat: 15.65, Lng: 80.30, RadiusM: 2000},
		{ID: "northern-waters", Name: "Northern Coastal Waters", Lat: 16.25, Lng: 81.30, RadiusM: 3000},
	}
}

// DefaultSafeZones are sheltered fishing waters.
func DefaultSafeZones() []ZoneConfig {
	return []ZoneConfig{
		{ID: "safe-vetapalem", Name: "Vetapalem Safe Waters", Lat: 15.72, Lng: 80.38, RadiusM: 2000},
		{ID: "safe-chirala", Name: "Chirala Safe Waters", Lat: 15.77, Lng: 80.43, RadiusM: 2500},
		{ID: "safe-bapatla", Name: "Bapatla Safe Waters", Lat: 15.85, Lng: 80.55, RadiusM: 3000},
		{ID: "safe-nizampatnam", Name: "Nizampatnam Safe Waters", Lat: 15.89, Lng: 80.73, RadiusM: 2000},
		{ID: "safe-repalle", Name: "Repalle Safe Waters", Lat: 16.05, Lng: 80.93, RadiusM: 2500},
		{ID: "safe-avanigadda", Name: "Avanigadda Safe Waters", Lat: 16.12, Lng: 81.03, RadiusM: 2000},
		{ID: "safe-nagayalanka", Name: "Nagayalanka Safe Waters", Lat: 16.15, Lng: 81.13, RadiusM: 3000},
	}
}

// DefaultHarbors are the harbors a boat can run for.
func DefaultHarbors() []HarborConfig {
	return []HarborConfig{
		{Name: "Krishna River Mouth", Lat: 16.356, Lng: 81.294},
		{Name: "Kakinada Harbor", Lat: 16.989, Lng: 82.247},
		{Name: "Machilipatnam Harbor", Lat: 16.176, Lng: 81.138},
	}
}
