package postgres

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationSampleRepository implements the repository.LocationSampleRepository interface.
type locationSampleRepository struct {
	db *gorm.DB
}

// NewLocationSampleRepository is the constructor for locationSampleRepository.
func NewLocationSampleRepository(db *gorm.DB) repository.LocationSampleRepository {
	return &locationSampleRepository{
		db: db,
	}
}

// CreateSample persists a new location sample.
func (repo *locationSampleRepository) CreateSample(ctx context.Context, sample *entity.LocationSample) error {
	sampleM := fromSampleDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("sample references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location sample")
	}

	sample.ID = sampleM.ID
	sample.CreatedAt = sampleM.CreatedAt

	return nil
}

// FindLatestSample retrieves the most recent sample for a user.
func (repo *locationSampleRepository) FindLatestSample(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	var sampleM model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoLocationSamples
		}

		return nil, errors.Wrap(err, "failed to find latest location sample")
	}

	return toSampleDomain(&sampleM), nil
}

// FindRecentSamples retrieves samples newer than since, newest first, up to limit.
func (repo *locationSampleRepository) FindRecentSamples(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND timestamp > ?", userID, since).
		Order("timestamp DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent location samples")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toSampleDomain(sampleM))
	}

	return samples, nil
}

// --- Mapper Functions ---

// toSampleDomain converts a GORM LocationSampleModel to a domain LocationSample entity.
func toSampleDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:           data.ID,
		UserID:       data.UserID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Accuracy:     data.Accuracy,
		Speed:        data.Speed,
		Heading:      data.Heading,
		Altitude:     data.Altitude,
		BatteryLevel: data.BatteryLevel,
		Source:       data.Source,
		Timestamp:    data.Timestamp,
		CreatedAt:    data.CreatedAt,
	}
}

// fromSampleDomain converts a domain LocationSample entity to a GORM LocationSampleModel.
func fromSampleDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Accuracy:     data.Accuracy,
		Speed:        data.Speed,
		Heading:      data.Heading,
		Altitude:     data.Altitude,
		BatteryLevel: data.BatteryLevel,
		Source:       data.Source,
		Timestamp:    data.Timestamp,
		CreatedAt:    data.CreatedAt,
	}
}
