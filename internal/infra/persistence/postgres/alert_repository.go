// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new emergency alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM, err := fromAlertDomain(alert)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("alert references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	// Update the entity with generated values
	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.EmergencyAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM)
}

// SaveAlert persists a mutated alert with an optimistic version check. The
// update only lands when the stored version still matches the version the
// alert was loaded with; a concurrent writer winning the race surfaces as
// repository.ErrStaleAlert so the caller can reload and retry.
func (repo *alertRepository) SaveAlert(ctx context.Context, alert *entity.Alert) error {
	alertM, err := fromAlertDomain(alert)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyAlertModel{}).
		Where("id = ? AND version = ?", alert.ID, alert.Version).
		Updates(map[string]interface{}{
			"status":           alertM.Status,
			"priority":         alertM.Priority,
			"escalation_level": alertM.EscalationLevel,
			"description":      alertM.Description,
			"response":         alertM.Response,
			"timeline":         alertM.Timeline,
			"resolved_at":      alertM.ResolvedAt,
			"resolved_by":      alertM.ResolvedBy,
			"version":          alert.Version + 1,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save alert")
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or another writer advanced the version first.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.EmergencyAlertModel{}).
			Where("id = ?", alert.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check alert existence")
		}
		if count == 0 {
			return repository.ErrAlertNotFound
		}

		return repository.ErrStaleAlert
	}

	alert.Version++

	return nil
}

// FindActiveAlertsByUser retrieves a user's alerts that still require attention,
// newest first.
func (repo *alertRepository) FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	var alertModels []*model.EmergencyAlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(entity.AlertStatusActive),
			string(entity.AlertStatusAcknowledged),
		}).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts by user")
	}

	return toAlertDomainSlice(alertModels)
}

// FindAlertsByUser retrieves a user's alert history, newest first, up to limit.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.EmergencyAlertModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	return toAlertDomainSlice(alertModels)
}

// --- Mapper Functions ---

func toAlertDomainSlice(alertModels []*model.EmergencyAlertModel) ([]*entity.Alert, error) {
	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alert, err := toAlertDomain(alertM)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// toAlertDomain converts a GORM EmergencyAlertModel to a domain Alert entity.
func toAlertDomain(data *model.EmergencyAlertModel) (*entity.Alert, error) {
	if data == nil {
		return nil, nil
	}

	alert := &entity.Alert{
		ID:              data.ID,
		UserID:          data.UserID,
		Type:            entity.AlertType(data.Type),
		Status:          entity.AlertStatus(data.Status),
		Priority:        entity.AlertPriority(data.Priority),
		EscalationLevel: data.EscalationLevel,
		Description:     data.Description,
		ResolvedAt:      data.ResolvedAt,
		ResolvedBy:      data.ResolvedBy,
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		location := &entity.Location{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
			Address:   data.Address,
		}
		if data.Accuracy != nil {
			location.Accuracy = *data.Accuracy
		}
		alert.Location = location
	}

	if len(data.Response) > 0 {
		if err := json.Unmarshal(data.Response, &alert.Response); err != nil {
			return nil, errors.Wrap(err, "failed to decode alert response state")
		}
	}
	if len(data.Timeline) > 0 {
		if err := json.Unmarshal(data.Timeline, &alert.Timeline); err != nil {
			return nil, errors.Wrap(err, "failed to decode alert timeline")
		}
	}

	return alert, nil
}

// fromAlertDomain converts a domain Alert entity to a GORM EmergencyAlertModel.
func fromAlertDomain(data *entity.Alert) (*model.EmergencyAlertModel, error) {
	if data == nil {
		return nil, nil
	}

	response, err := json.Marshal(data.Response)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode alert response state")
	}

	timeline := data.Timeline
	if timeline == nil {
		timeline = []entity.TimelineEntry{}
	}
	timelineJSON, err := json.Marshal(timeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode alert timeline")
	}

	alertM := &model.EmergencyAlertModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Type:            data.Type.String(),
		Status:          string(data.Status),
		Priority:        string(data.Priority),
		EscalationLevel: data.EscalationLevel,
		Description:     data.Description,
		Response:        response,
		Timeline:        timelineJSON,
		ResolvedAt:      data.ResolvedAt,
		ResolvedBy:      data.ResolvedBy,
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Location != nil {
		lat := data.Location.Latitude
		lon := data.Location.Longitude
		alertM.Latitude = &lat
		alertM.Longitude = &lon
		alertM.Address = data.Location.Address
		if data.Location.Accuracy != 0 {
			accuracy := data.Location.Accuracy
			alertM.Accuracy = &accuracy
		}
	}

	return alertM, nil
}
