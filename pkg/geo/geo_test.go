package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Две точки в центре Манхэттена, около 667 метров друг от друга
	got := DistanceMeters(40.7580, -73.9855, 40.7520, -73.9860)
	assert.InDelta(t, 667, got, 5)
}

func TestDistanceMeters_ShortDistance(t *testing.T) {
	// 0.001 градуса широты — около 111 метров
	got := DistanceMeters(26.8500, 80.9500, 26.8510, 80.9500)
	assert.InDelta(t, 111, got, 2)
}

func TestDistanceMeters_SamePoint(t *testing.T) {
	assert.Equal(t, 0, DistanceMeters(55.75, 37.61, 55.75, 37.61))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(40.7128, -74.0060, 51.5074, -0.1278)
	d2 := DistanceMeters(51.5074, -0.1278, 40.7128, -74.0060)
	assert.Equal(t, d1, d2)
}

func TestDistanceMeters_HalfEquator(t *testing.T) {
	// Противоположные точки экватора: половина длины большого круга
	got := DistanceMeters(0, 0, 0, 180)
	assert.InDelta(t, math.Pi*EarthRadiusMeters, float64(got), 1)
}

func TestBearingDegrees_CardinalDirections(t *testing.T) {
	assert.InDelta(t, 0, BearingDegrees(10, 20, 11, 20), 0.01, "север")
	assert.InDelta(t, 90, BearingDegrees(0, 10, 0, 11), 0.01, "восток")
	assert.InDelta(t, 180, BearingDegrees(11, 20, 10, 20), 0.01, "юг")
	assert.InDelta(t, 270, BearingDegrees(0, 11, 0, 10), 0.01, "запад")
}

func TestBearingDegrees_Normalized(t *testing.T) {
	// Азимут всегда в диапазоне [0, 360)
	points := [][4]float64{
		{10, 20, 11, 20},
		{0, 11, 0, 10},
		{-35.5, 150.1, 40.7, -74.0},
		{55.75, 37.61, 55.75, 37.61},
	}
	for _, p := range points {
		b := BearingDegrees(p[0], p[1], p[2], p[3])
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	}
}

func TestIsWithinRadius_InclusiveBoundary(t *testing.T) {
	// Расстояние между точками — ровно 667 метров после округления
	assert.True(t, IsWithinRadius(40.7128, -74.0060, 40.7188, -74.0060, 667))
	assert.False(t, IsWithinRadius(40.7128, -74.0060, 40.7188, -74.0060, 666))
}

func TestIsWithinRadius_SamePoint(t *testing.T) {
	assert.True(t, IsWithinRadius(26.85, 80.95, 26.85, 80.95, 1))
}

func TestIsValidCoordinate(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"нулевые координаты валидны", 0, 0, true},
		{"границы диапазонов", 90, 180, true},
		{"отрицательные границы", -90, -180, true},
		{"широта за пределами", 200, 80, false},
		{"долгота за пределами", 40, -181, false},
		{"NaN широта", math.NaN(), 0, false},
		{"бесконечная долгота", 0, math.Inf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidCoordinate(tc.lat, tc.lng))
		})
	}
}
