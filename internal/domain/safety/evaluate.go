package safety

import (
	"lifeline/internal/domain/entity"
)

// Evaluation is the combined outcome of checking one location against the
// user's fences and recent movement.
type Evaluation struct {
	Violations []GeofenceViolation `json:"violations,omitempty"`
	Anomalies  []MovementAnomaly   `json:"anomalies,omitempty"`
}

// EvaluateLocation runs both detectors over one position report. Pure: nil or
// empty fences and samples simply produce no findings, so callers may pass
// whatever subset of inputs they could load.
func EvaluateLocation(loc entity.Location, fences []*entity.Geofence, samples []*entity.LocationSample, thresholds MovementThresholds) Evaluation {
	return Evaluation{
		Violations: EvaluateGeofences(loc, fences),
		Anomalies:  DetectAnomalies(samples, thresholds),
	}
}
