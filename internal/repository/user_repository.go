package repository

import (
	"fmt"

	"github.com/haojie/dochub-api/internal/database"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithDefaultRole creates the user and attaches the default role atomically.
func (r *GormUserRepository) CreateWithDefaultRole(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		var role models.Role
		if err := tx.Where(models.Role{Name: models.DefaultRoleName}).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("ensure default role: %w", err)
		}

		if err := tx.Model(user).Association("Roles").Append(&role); err != nil {
			return fmt.Errorf("attach default role: %w", err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.NotDeleted).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND is_deleted = ?", username, false).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND is_deleted = ?", email, false).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByIDs counts how many of the given user IDs exist
func (r *GormUserRepository) CountByIDs(ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.User{}).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Count(&count).Error
	return count, err
}

// List retrieves users matching the filter with pagination.
func (r *GormUserRepository) List(filter string, params utils.PaginationParams, visibleTo *uint64) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).Scopes(database.NotDeleted)

	if visibleTo != nil {
		query = query.Where("id = ?", *visibleTo)
	}
	if filter != "" {
		pattern := "%" + filter + "%"
		query = query.Where("username LIKE ? OR nickname LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("id ASC").
		Scopes(database.Paginate(params)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
