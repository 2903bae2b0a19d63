package users_repositories

import (
	"time"

	users_models "taskhive/internal/features/users/models"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateProfile(userID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	updates["updated_at"] = time.Now().UTC()

	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password":        hashedPassword,
			"password_creation_time": time.Now().UTC(),
		}).Error
}

// SearchByEmailExcluding returns users whose email contains the query,
// skipping the given IDs. Matching is case-insensitive.
func (r *UserRepository) SearchByEmailExcluding(
	query string,
	excludeIDs []uuid.UUID,
	limit int,
) ([]*users_models.User, error) {
	var users []*users_models.User

	dbQuery := storage.GetDb().
		Where("LOWER(email) LIKE ?", "%"+query+"%").
		Order("email ASC").
		Limit(limit)

	if len(excludeIDs) > 0 {
		dbQuery = dbQuery.Where("id NOT IN ?", excludeIDs)
	}

	if err := dbQuery.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
