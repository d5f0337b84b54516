package geo

import (
	"strconv"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// ParseCoordinate parses caller-supplied lat/lng query values into a
// WGS84 point. Malformed or out-of-range input returns ok=false; the
// catalog then falls back to its natural order instead of erroring.
func ParseCoordinate(latStr, lngStr string) (orb.Point, bool) {
	if latStr == "" || lngStr == "" {
		return orb.Point{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return orb.Point{}, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return orb.Point{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// DistanceMeters returns the great-circle distance in meters between a
// caller's point and a field's stored coordinate.
func DistanceMeters(from orb.Point, lng, lat float64) float64 {
	return orbgeo.Distance(from, orb.Point{lng, lat})
}
