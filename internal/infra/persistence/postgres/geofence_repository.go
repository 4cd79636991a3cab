package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// FindGeofencesByUser retrieves all geofences configured for a user.
func (repo *geofenceRepository) FindGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	var fenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&fenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by user")
	}

	fences := make([]*entity.Geofence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toGeofenceDomain(fenceM))
	}

	return fences, nil
}

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Type:      entity.GeofenceType(data.Type),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Radius:    data.Radius,
	}
}
