// Package safety contains the pure geospatial evaluators feeding the alert
// workflow: geofence monitoring and movement anomaly detection. Both are
// stateless; the same inputs always yield the same outputs.
package safety

import (
	"lifeline/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GeofenceViolation describes a single fence whose policy the location breaks.
type GeofenceViolation struct {
	GeofenceID   string              `json:"geofence_id"`
	GeofenceName string              `json:"geofence_name"`
	Type         entity.GeofenceType `json:"type"`
	Distance     float64             `json:"distance"` // Distance from fence center in meters.
	Location     entity.Location     `json:"location"`
}

// Distance returns the great-circle distance in meters between two
// latitude/longitude pairs.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// EvaluateGeofences checks a location against a set of fences and returns a
// violation descriptor for each fence whose policy is broken. A point at
// exactly the fence radius counts as inside. Safe fences violate when the
// point is outside; danger fences violate when it is inside.
func EvaluateGeofences(loc entity.Location, fences []*entity.Geofence) []GeofenceViolation {
	var violations []GeofenceViolation

	for _, fence := range fences {
		distance := Distance(loc.Latitude, loc.Longitude, fence.Latitude, fence.Longitude)
		isInside := distance <= fence.Radius

		violated := (fence.Type == entity.GeofenceTypeSafe && !isInside) ||
			(fence.Type == entity.GeofenceTypeDanger && isInside)
		if !violated {
			continue
		}

		violations = append(violations, GeofenceViolation{
			GeofenceID:   fence.ID.String(),
			GeofenceName: fence.Name,
			Type:         fence.Type,
			Distance:     distance,
			Location:     loc,
		})
	}

	return violations
}
