package geo

import "math"

// EarthRadiusMeters — средний радиус Земли в метрах.
const EarthRadiusMeters = 6371000.0

// DistanceMeters возвращает расстояние большого круга между двумя точками
// по формуле гаверсинусов, округленное до целых метров.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) int {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(EarthRadiusMeters * c))
}

// BearingDegrees возвращает начальный азимут от первой точки ко второй
// в градусах, нормализованный в диапазон [0, 360).
func BearingDegrees(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

// IsWithinRadius сообщает, попадает ли вторая точка в радиус от первой.
// Граница радиуса включается.
func IsWithinRadius(lat1, lng1, lat2, lng2 float64, radiusMeters int) bool {
	return DistanceMeters(lat1, lng1, lat2, lng2) <= radiusMeters
}

// IsValidCoordinate проверяет, что широта и долгота конечны и лежат в
// допустимых диапазонах. Нулевые координаты — валидная точка в Гвинейском заливе.
func IsValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
