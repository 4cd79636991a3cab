package safety

import (
	"testing"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTrack builds a newest-first window where consecutive samples are
// spaced stepSeconds apart and each pair is separated by the given distance
// in meters (approximated via latitude offsets).
func sampleTrack(t *testing.T, stepSeconds float64, distances ...float64) []*entity.LocationSample {
	t.Helper()

	const metersPerDegreeLat = 111194.9 // mean value for the haversine sphere

	userID := uuid.New()
	now := time.Now()

	// Build oldest-first, then reverse into the newest-first order the
	// detector expects.
	lat := 25.0
	oldestFirst := make([]*entity.LocationSample, 0, len(distances)+1)
	oldestFirst = append(oldestFirst, &entity.LocationSample{
		UserID: userID, Latitude: lat, Longitude: 121.5,
		Timestamp: now,
	})
	for i, d := range distances {
		lat += d / metersPerDegreeLat
		oldestFirst = append(oldestFirst, &entity.LocationSample{
			UserID: userID, Latitude: lat, Longitude: 121.5,
			Timestamp: now.Add(time.Duration(float64(i+1) * stepSeconds * float64(time.Second))),
		})
	}

	samples := make([]*entity.LocationSample, 0, len(oldestFirst))
	for i := len(oldestFirst) - 1; i >= 0; i-- {
		samples = append(samples, oldestFirst[i])
	}

	return samples
}

func TestDetectAnomalies_TwoSamplesNeverFlag(t *testing.T) {
	// A single pair at ~200 m/s would trip every threshold, but two samples
	// are below the minimum window.
	samples := sampleTrack(t, 10, 2000)
	require.Len(t, samples, 2)

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_HighSpeed(t *testing.T) {
	// Two pairs at 350 m per 10 s = 35 m/s sustained (~126 km/h).
	samples := sampleTrack(t, 10, 350, 350)

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyHighSpeed, anomalies[0].Type)
	assert.InDelta(t, 35.0, anomalies[0].MaxSpeed, 0.5)
	assert.InDelta(t, 35.0, anomalies[0].AverageSpeed, 0.5)
}

func TestDetectAnomalies_HighPeakLowAverageNotFlagged(t *testing.T) {
	// One 35 m/s burst among slow pairs: peak exceeds the threshold but the
	// average stays below, so high_speed must not fire. The spread still
	// marks the window erratic.
	samples := sampleTrack(t, 10, 350, 10, 10, 10)

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyErraticMovement, anomalies[0].Type)
	assert.InDelta(t, 34.0, anomalies[0].SpeedVariation, 0.5)
}

func TestDetectAnomalies_HighSpeedAndErraticCoOccur(t *testing.T) {
	// 50 m/s and 25 m/s pairs: avg 37.5 m/s, spread 25 m/s.
	samples := sampleTrack(t, 10, 500, 250)

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	require.Len(t, anomalies, 2)
	assert.Equal(t, AnomalyHighSpeed, anomalies[0].Type)
	assert.Equal(t, AnomalyErraticMovement, anomalies[1].Type)
}

func TestDetectAnomalies_SteadyWalkIsQuiet(t *testing.T) {
	// ~1.5 m/s walking pace.
	samples := sampleTrack(t, 10, 15, 15, 15, 15)

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_SkipsZeroElapsedPairs(t *testing.T) {
	samples := sampleTrack(t, 10, 15, 15)
	// Duplicate timestamp on the newest pair.
	samples[0].Timestamp = samples[1].Timestamp

	anomalies := DetectAnomalies(samples, DefaultMovementThresholds())
	assert.Empty(t, anomalies)
}
