package domain

// Coordinate - точка в десятичных градусах. Порядок полей (lon, lat) как в каталоге.
type Coordinate struct {
	Lon float64 `json:"lon" db:"lon"`
	Lat float64 `json:"lat" db:"lat"`
}

// Statistics - сводка по загруженному каталогу
type Statistics struct {
	Destinations         int     `json:"destinations"`
	Cities               int     `json:"cities"`
	AccommodationOptions int     `json:"accommodation_options"`
	FoodOptions          int     `json:"food_options"`
	FlightRoutes         int     `json:"flight_routes"`
	MaxCandidates        int     `json:"max_candidates"`
	AvgReferenceKm       float64 `json:"avg_reference_km"`
	CatalogVersion       string  `json:"catalog_version"`
}
