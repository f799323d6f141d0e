package utils

import (
	"math"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат (NaN и Inf не проходят)
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceKm - great-circle distance between two coordinates in whole kilometres.
// The result is truncated, not rounded: 235.9 km is 235.
func DistanceKm(a, b domain.Coordinate) (int, error) {
	if !ValidateCoordinates(a.Lat, a.Lon) {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": a.Lat,
			"lon": a.Lon,
		})
	}
	if !ValidateCoordinates(b.Lat, b.Lon) {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": b.Lat,
			"lon": b.Lon,
		})
	}

	return int(HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)), nil
}
