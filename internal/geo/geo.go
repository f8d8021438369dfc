package geo

import (
	"math"

	"github.com/shenikar/kiddo_tracking_system/internal/models"
)

// EarthRadiusMeters - радиус Земли в метрах для формулы гаверсинуса
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние по дуге большого круга между двумя точками в метрах.
// Входные значения уже валидированы конструкторами моделей.
func Distance(a, b models.Location) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Atan2 численно устойчив для почти антиподальных точек, где h -> 1
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsInside сообщает, находится ли точка внутри зоны (граница считается внутри)
func IsInside(p models.Location, f models.Geofence) bool {
	return Distance(p, f.Center) <= f.RadiusMeters
}

// BoundaryDistance возвращает расстояние от точки до границы зоны в метрах.
// Отрицательное значение - внутри зоны, ноль - ровно на границе.
func BoundaryDistance(p models.Location, f models.Geofence) float64 {
	return Distance(p, f.Center) - f.RadiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
