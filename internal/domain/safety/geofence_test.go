package safety

import (
	"testing"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateGeofences_DangerBoundaryInclusive(t *testing.T) {
	center := entity.Location{Latitude: 25.0330, Longitude: 121.5654}
	point := entity.Location{Latitude: 25.0340, Longitude: 121.5654}

	// Define the fence radius as exactly the distance to the point, so the
	// point sits on the boundary.
	radius := Distance(point.Latitude, point.Longitude, center.Latitude, center.Longitude)

	fence := &entity.Geofence{
		ID:        uuid.New(),
		Name:      "construction site",
		Type:      entity.GeofenceTypeDanger,
		Latitude:  center.Latitude,
		Longitude: center.Longitude,
		Radius:    radius,
	}

	violations := EvaluateGeofences(point, []*entity.Geofence{fence})
	require.Len(t, violations, 1)
	assert.Equal(t, entity.GeofenceTypeDanger, violations[0].Type)
	assert.Equal(t, fence.ID.String(), violations[0].GeofenceID)

	// Shrinking the radius puts the point outside a danger fence: no violation.
	fence.Radius = radius - 0.01
	violations = EvaluateGeofences(point, []*entity.Geofence{fence})
	assert.Empty(t, violations)
}

func TestEvaluateGeofences_SafeFenceFiresOutside(t *testing.T) {
	fence := &entity.Geofence{
		ID:        uuid.New(),
		Name:      "home",
		Type:      entity.GeofenceTypeSafe,
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    200,
	}

	inside := entity.Location{Latitude: 25.0331, Longitude: 121.5654}
	violations := EvaluateGeofences(inside, []*entity.Geofence{fence})
	assert.Empty(t, violations)

	outside := entity.Location{Latitude: 25.0430, Longitude: 121.5654}
	violations = EvaluateGeofences(outside, []*entity.Geofence{fence})
	require.Len(t, violations, 1)
	assert.Equal(t, entity.GeofenceTypeSafe, violations[0].Type)
	assert.Greater(t, violations[0].Distance, fence.Radius)
}

func TestEvaluateGeofences_MultipleFences(t *testing.T) {
	point := entity.Location{Latitude: 25.0330, Longitude: 121.5654}

	safeFar := &entity.Geofence{
		ID: uuid.New(), Name: "office", Type: entity.GeofenceTypeSafe,
		Latitude: 25.1000, Longitude: 121.5654, Radius: 100,
	}
	dangerHere := &entity.Geofence{
		ID: uuid.New(), Name: "riverbank", Type: entity.GeofenceTypeDanger,
		Latitude: 25.0330, Longitude: 121.5654, Radius: 500,
	}
	safeHere := &entity.Geofence{
		ID: uuid.New(), Name: "campus", Type: entity.GeofenceTypeSafe,
		Latitude: 25.0330, Longitude: 121.5660, Radius: 1000,
	}

	violations := EvaluateGeofences(point, []*entity.Geofence{safeFar, dangerHere, safeHere})
	require.Len(t, violations, 2)
	assert.Equal(t, safeFar.ID.String(), violations[0].GeofenceID)
	assert.Equal(t, dangerHere.ID.String(), violations[1].GeofenceID)
}

func TestEvaluateGeofences_NoFences(t *testing.T) {
	point := entity.Location{Latitude: 25.0330, Longitude: 121.5654}
	assert.Empty(t, EvaluateGeofences(point, nil))
}
