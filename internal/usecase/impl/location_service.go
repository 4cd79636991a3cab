package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/safety"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

const (
	// defaultLookback bounds the sample window fed to the movement detector.
	defaultLookback = 30 * time.Minute
	// defaultMaxSamples caps that window regardless of its time span.
	defaultMaxSamples = 10
)

// locationService ingests position reports and runs the safety evaluators
// over them. Detection is advisory: it stores the sample, publishes detector
// events and returns what it found, but opening alerts is the auto-trigger
// subscriber's job.
type locationService struct {
	sampleRepo   repository.LocationSampleRepository
	geofenceRepo repository.GeofenceRepository
	eventBus     service.EventBus
	logger       *slog.Logger

	thresholds safety.MovementThresholds
	lookback   time.Duration
	maxSamples int
}

// NewLocationService creates a new location ingestion service instance
func NewLocationService(
	sampleRepo repository.LocationSampleRepository,
	geofenceRepo repository.GeofenceRepository,
	eventBus service.EventBus,
	thresholds safety.MovementThresholds,
	lookback time.Duration,
	maxSamples int,
	logger *slog.Logger,
) usecase.LocationUsecase {
	if lookback <= 0 {
		lookback = defaultLookback
	}
	if maxSamples <= 0 {
		maxSamples = defaultMaxSamples
	}

	return &locationService{
		sampleRepo:   sampleRepo,
		geofenceRepo: geofenceRepo,
		eventBus:     eventBus,
		logger:       logger,
		thresholds:   thresholds,
		lookback:     lookback,
		maxSamples:   maxSamples,
	}
}

// UpdateLocation stores the sample, evaluates the user's geofences and recent
// movement, and publishes detector events for anything flagged.
func (s *locationService) UpdateLocation(ctx context.Context, userID uuid.UUID, input *usecase.UpdateLocationInput) (*usecase.SafetyEvaluation, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing location payload")
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	sample := &entity.LocationSample{
		ID:           uuid.New(),
		UserID:       userID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Accuracy:     input.Accuracy,
		Speed:        input.Speed,
		Heading:      input.Heading,
		Altitude:     input.Altitude,
		BatteryLevel: input.BatteryLevel,
		Source:       input.Source,
		Timestamp:    timestamp,
	}

	if err := s.sampleRepo.CreateSample(ctx, sample); err != nil {
		return nil, err
	}

	s.eventBus.Emit(ctx, service.EventLocationUpdated, sample)

	evaluation := &usecase.SafetyEvaluation{Sample: sample}
	location := entity.Location{
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Accuracy:  sample.Accuracy,
	}

	// A read failure on either input degrades detection but must not reject
	// the already stored sample; the evaluators treat missing input as empty.
	fences, err := s.geofenceRepo.FindGeofencesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load geofences, skipping evaluation",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
		fences = nil
	}

	since := timestamp.Add(-s.lookback)
	window, err := s.sampleRepo.FindRecentSamples(ctx, userID, since, s.maxSamples)
	if err != nil {
		s.logger.Error("failed to load recent samples, skipping movement analysis",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
		window = nil
	}

	result := safety.EvaluateLocation(location, fences, window, s.thresholds)
	evaluation.Violations = result.Violations
	evaluation.Anomalies = result.Anomalies

	for i := range evaluation.Violations {
		s.eventBus.Emit(ctx, service.EventGeofenceViolation, &usecase.GeofenceViolationEvent{
			UserID:    userID,
			Violation: evaluation.Violations[i],
		})
	}
	for i := range evaluation.Anomalies {
		s.eventBus.Emit(ctx, service.EventMovementUnusual, &usecase.MovementAnomalyEvent{
			UserID:  userID,
			Anomaly: evaluation.Anomalies[i],
		})
	}

	return evaluation, nil
}

// GetLatestLocation retrieves the user's most recent sample.
func (s *locationService) GetLatestLocation(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	sample, err := s.sampleRepo.FindLatestSample(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoLocationSamples) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load latest location")
	}

	return sample, nil
}
