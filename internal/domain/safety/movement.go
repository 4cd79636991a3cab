package safety

import (
	"lifeline/internal/domain/entity"
)

// Anomaly types emitted by the movement detector.
const (
	// AnomalyHighSpeed flags sustained movement far above pedestrian speed,
	// e.g. a potential vehicle abduction.
	AnomalyHighSpeed = "high_speed"
	// AnomalyErraticMovement flags large swings between the fastest and
	// slowest observed speeds.
	AnomalyErraticMovement = "erratic_movement"
)

// minSamplesForAnalysis is the smallest window the detector will evaluate.
// Two samples give a single speed and no pattern.
const minSamplesForAnalysis = 3

// MovementThresholds are the tuning knobs for anomaly detection, all in m/s.
type MovementThresholds struct {
	HighSpeed      float64 // Peak speed above which movement is suspicious.
	AverageSpeed   float64 // Mean speed that must also be exceeded for high_speed.
	SpeedVariation float64 // Max-min spread that marks erratic movement.
}

// DefaultMovementThresholds tunes high_speed to roughly 100+ km/h sustained.
func DefaultMovementThresholds() MovementThresholds {
	return MovementThresholds{
		HighSpeed:      30,
		AverageSpeed:   20,
		SpeedVariation: 15,
	}
}

// MovementAnomaly describes one suspicious pattern found in the sample window.
type MovementAnomaly struct {
	Type           string          `json:"type"`
	AverageSpeed   float64         `json:"average_speed"`            // m/s over the window.
	MaxSpeed       float64         `json:"max_speed"`                // m/s.
	SpeedVariation float64         `json:"speed_variation,omitempty"` // m/s, set for erratic_movement.
	Location       entity.Location `json:"location"`                 // Most recent position in the window.
}

// DetectAnomalies evaluates a time-descending window of recent samples and
// returns any anomalies found. Fewer than three samples yield none. Speeds
// are derived per consecutive pair as haversine distance over elapsed time;
// pairs with a non-positive time delta are skipped. The high-speed and
// erratic checks are independent and may both fire on the same window.
func DetectAnomalies(samples []*entity.LocationSample, thresholds MovementThresholds) []MovementAnomaly {
	if len(samples) < minSamplesForAnalysis {
		return nil
	}

	speeds := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		prev := samples[i]   // older
		curr := samples[i-1] // newer

		elapsed := curr.Timestamp.Sub(prev.Timestamp).Seconds()
		if elapsed <= 0 {
			continue
		}

		distance := Distance(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		speeds = append(speeds, distance/elapsed)
	}

	if len(speeds) == 0 {
		return nil
	}

	var sum float64
	maxSpeed := speeds[0]
	minSpeed := speeds[0]
	for _, speed := range speeds {
		sum += speed
		if speed > maxSpeed {
			maxSpeed = speed
		}
		if speed < minSpeed {
			minSpeed = speed
		}
	}
	avgSpeed := sum / float64(len(speeds))

	latest := samples[0]
	location := entity.Location{Latitude: latest.Latitude, Longitude: latest.Longitude}

	var anomalies []MovementAnomaly

	if maxSpeed > thresholds.HighSpeed && avgSpeed > thresholds.AverageSpeed {
		anomalies = append(anomalies, MovementAnomaly{
			Type:         AnomalyHighSpeed,
			AverageSpeed: avgSpeed,
			MaxSpeed:     maxSpeed,
			Location:     location,
		})
	}

	if maxSpeed-minSpeed > thresholds.SpeedVariation {
		anomalies = append(anomalies, MovementAnomaly{
			Type:           AnomalyErraticMovement,
			AverageSpeed:   avgSpeed,
			MaxSpeed:       maxSpeed,
			SpeedVariation: maxSpeed - minSpeed,
			Location:       location,
		})
	}

	return anomalies
}
