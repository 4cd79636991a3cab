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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindEmergencyContacts retrieves the active emergency contacts for a user.
func (repo *userRepository) FindEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error) {
	var contactModels []*model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find emergency contacts")
	}

	contacts := make([]*entity.EmergencyContact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		FullName:    data.FullName,
		Phone:       data.Phone,
		Email:       data.Email,
		MedicalInfo: data.MedicalInfo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toContactDomain converts a GORM EmergencyContactModel to a domain EmergencyContact entity.
func toContactDomain(data *model.EmergencyContactModel) *entity.EmergencyContact {
	if data == nil {
		return nil
	}

	return &entity.EmergencyContact{
		ID:       data.ID,
		UserID:   data.UserID,
		Name:     data.Name,
		Phone:    data.Phone,
		Email:    data.Email,
		FCMToken: data.FCMToken,
		IsActive: data.IsActive,
	}
}
