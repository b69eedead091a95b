package repository

import (
	"errors"
	"fmt"

	"github.com/haojie/dochub-api/internal/database"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithViewers creates the project and its initial viewer rows atomically.
func (r *GormProjectRepository) CreateWithViewers(project *models.Project, viewerIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		if len(viewerIDs) == 0 {
			return nil
		}

		rows := make([]models.ProjectViewer, 0, len(viewerIDs))
		for _, userID := range viewerIDs {
			rows = append(rows, models.ProjectViewer{
				ProjectID: project.ID,
				UserID:    userID,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("create viewer rows: %w", err)
		}

		return nil
	})
}

// FindByID finds a project by ID, excluding soft-deleted projects
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Scopes(database.NotDeleted).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ExistsByNameAndOwner reports whether the owner already has a project with this name.
func (r *GormProjectRepository) ExistsByNameAndOwner(name string, ownerID uint64) (bool, error) {
	var project models.Project
	err := r.db.Where("name = ? AND owner_id = ? AND is_deleted = ?", name, ownerID, false).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List retrieves projects with filtering and pagination
func (r *GormProjectRepository) List(filter string, params utils.PaginationParams) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{}).Scopes(database.NotDeleted)

	if filter != "" {
		query = query.Where("name LIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := query.Order("id ASC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ActiveViewerIDs returns the user IDs with an active association row for the project.
func (r *GormProjectRepository) ActiveViewerIDs(projectID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.ProjectViewer{}).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ReconcileViewers diffs the desired viewer set against the stored
// association rows and applies the minimal patch: active rows leaving
// the set are soft-deleted, soft-deleted rows re-entering it are
// reactivated in place (keeping their create_time), and users with no
// row at all get a fresh insert. Rows already in the desired state are
// not rewritten. Everything runs in one transaction; a failed step
// rolls the whole reconciliation back.
func (r *GormProjectRepository) ReconcileViewers(projectID uint64, desired []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rows []models.ProjectViewer
		if err := tx.Where("project_id = ?", projectID).Find(&rows).Error; err != nil {
			return fmt.Errorf("load viewer rows: %w", err)
		}

		desiredSet := make(map[uint64]struct{}, len(desired))
		for _, userID := range desired {
			desiredSet[userID] = struct{}{}
		}

		existing := make(map[uint64]models.ProjectViewer, len(rows))
		var toRemove []uint64
		for _, row := range rows {
			existing[row.UserID] = row
			if !row.IsDeleted {
				if _, keep := desiredSet[row.UserID]; !keep {
					toRemove = append(toRemove, row.UserID)
				}
			}
		}

		var toRestore []uint64
		var toInsert []models.ProjectViewer
		for userID := range desiredSet {
			row, ok := existing[userID]
			switch {
			case !ok:
				toInsert = append(toInsert, models.ProjectViewer{
					ProjectID: projectID,
					UserID:    userID,
				})
			case row.IsDeleted:
				toRestore = append(toRestore, userID)
			}
		}

		if len(toRemove) > 0 {
			if err := tx.Model(&models.ProjectViewer{}).
				Where("project_id = ? AND user_id IN ? AND is_deleted = ?", projectID, toRemove, false).
				Update("is_deleted", true).Error; err != nil {
				return fmt.Errorf("soft delete viewers: %w", err)
			}
		}

		if len(toRestore) > 0 {
			if err := tx.Model(&models.ProjectViewer{}).
				Where("project_id = ? AND user_id IN ? AND is_deleted = ?", projectID, toRestore, true).
				Update("is_deleted", false).Error; err != nil {
				return fmt.Errorf("restore viewers: %w", err)
			}
		}

		if len(toInsert) > 0 {
			if err := tx.Create(&toInsert).Error; err != nil {
				return fmt.Errorf("insert viewers: %w", err)
			}
		}

		return nil
	})
}
