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
	"gorm.io/gorm/clause"
)

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

// UpsertSchedule creates or replaces the check-in schedule for a user.
// A user has at most one schedule, keyed by user_id.
func (repo *checkInRepository) UpsertSchedule(ctx context.Context, schedule *entity.CheckInSchedule) error {
	scheduleM := fromScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"interval_secs", "grace_secs", "last_check_in", "is_active", "updated_at",
			}),
		}).
		Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("schedule references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert check-in schedule")
	}

	schedule.ID = scheduleM.ID
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

// FindScheduleByUser retrieves the check-in schedule for a user.
func (repo *checkInRepository) FindScheduleByUser(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error) {
	var scheduleM model.CheckInScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in schedule")
	}

	return toScheduleDomain(&scheduleM), nil
}

// RecordCheckIn updates the last check-in time for a user's schedule.
func (repo *checkInRepository) RecordCheckIn(ctx context.Context, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckInScheduleModel{}).
		Where("user_id = ?", userID).
		Update("last_check_in", at)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record check-in")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCheckInScheduleNotFound
	}

	return nil
}

// FindOverdueSchedules retrieves active schedules whose check-in window has
// lapsed as of now. The window is interval plus grace period.
func (repo *checkInRepository) FindOverdueSchedules(ctx context.Context, now time.Time) ([]*entity.CheckInSchedule, error) {
	var scheduleModels []*model.CheckInScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND last_check_in + (interval_secs + grace_secs) * interval '1 second' < ?", true, now).
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue check-in schedules")
	}

	schedules := make([]*entity.CheckInSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedules = append(schedules, toScheduleDomain(scheduleM))
	}

	return schedules, nil
}

// --- Mapper Functions ---

// toScheduleDomain converts a GORM CheckInScheduleModel to a domain CheckInSchedule entity.
func toScheduleDomain(data *model.CheckInScheduleModel) *entity.CheckInSchedule {
	if data == nil {
		return nil
	}

	return &entity.CheckInSchedule{
		ID:          data.ID,
		UserID:      data.UserID,
		Interval:    time.Duration(data.IntervalSecs) * time.Second,
		GracePeriod: time.Duration(data.GraceSecs) * time.Second,
		LastCheckIn: data.LastCheckIn,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromScheduleDomain converts a domain CheckInSchedule entity to a GORM CheckInScheduleModel.
func fromScheduleDomain(data *entity.CheckInSchedule) *model.CheckInScheduleModel {
	if data == nil {
		return nil
	}

	return &model.CheckInScheduleModel{
		ID:           data.ID,
		UserID:       data.UserID,
		IntervalSecs: int64(data.Interval / time.Second),
		GraceSecs:    int64(data.GracePeriod / time.Second),
		LastCheckIn:  data.LastCheckIn,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
