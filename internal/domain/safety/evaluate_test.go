package safety

import (
	"testing"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLocation_CombinesBothDetectors(t *testing.T) {
	point := entity.Location{Latitude: 25.0330, Longitude: 121.5654}

	// A safe fence the point is far outside of.
	fence := &entity.Geofence{
		ID: uuid.New(), Name: "home", Type: entity.GeofenceTypeSafe,
		Latitude: 25.1000, Longitude: 121.5654, Radius: 100,
	}

	// Three samples 0.01 degrees apart every 30s is roughly 37 m/s.
	now := time.Now()
	samples := make([]*entity.LocationSample, 3)
	for i := range samples {
		samples[i] = &entity.LocationSample{
			Latitude:  25.0330 - float64(i)*0.01,
			Longitude: 121.5654,
			Timestamp: now.Add(-time.Duration(i) * 30 * time.Second),
		}
	}

	result := EvaluateLocation(point, []*entity.Geofence{fence}, samples, DefaultMovementThresholds())

	require.Len(t, result.Violations, 1)
	assert.Equal(t, fence.ID.String(), result.Violations[0].GeofenceID)
	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, AnomalyHighSpeed, result.Anomalies[0].Type)
}

func TestEvaluateLocation_EmptyInputs(t *testing.T) {
	point := entity.Location{Latitude: 25.0330, Longitude: 121.5654}

	result := EvaluateLocation(point, nil, nil, DefaultMovementThresholds())
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Anomalies)
}
