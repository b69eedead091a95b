package repository

import (
	"time"

	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithDefaultRole creates a user and attaches the default
	// role within a single transaction.
	CreateWithDefaultRole(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []uint64) (int64, error)

	// List retrieves users matching the filter. When visibleTo is
	// non-nil the result is restricted to that single user.
	List(filter string, params utils.PaginationParams, visibleTo *uint64) ([]models.User, int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithViewers creates a project and its initial viewer rows
	// in a single transaction.
	CreateWithViewers(project *models.Project, viewerIDs []uint64) error

	// FindByID finds a project by ID, excluding soft-deleted projects
	FindByID(id uint64) (*models.Project, error)

	// ExistsByNameAndOwner reports whether the owner already has a
	// project with this name.
	ExistsByNameAndOwner(name string, ownerID uint64) (bool, error)

	// List retrieves projects with filtering and pagination
	List(filter string, params utils.PaginationParams) ([]models.Project, int64, error)

	// ActiveViewerIDs returns the user IDs with an active association
	// row for the project.
	ActiveViewerIDs(projectID uint64) ([]uint64, error)

	// ReconcileViewers synchronizes the project's viewer set with
	// desired. Rows leaving the set are soft-deleted, rows re-entering
	// it are reactivated, and unseen users get new rows. The whole
	// operation is atomic and idempotent.
	ReconcileViewers(projectID uint64, desired []uint64) error
}

// DocListItem is the flat projection returned by doc listing; the
// project and owner names come from explicit joins rather than
// relation loading.
type DocListItem struct {
	ID          uint64           `json:"id"`
	FileName    string           `json:"file_name"`
	FileUUID    string           `json:"file_uuid"`
	Status      models.DocStatus `json:"status"`
	ProjectID   uint64           `json:"project_id"`
	ProjectName string           `json:"project_name"`
	OwnerID     uint64           `json:"owner_id"`
	OwnerName   string           `json:"owner_name"`
	CreateTime  time.Time        `json:"create_time"`
}

// DocRepository defines the interface for document data access
type DocRepository interface {
	// Create creates a new doc
	Create(doc *models.Doc) error

	// List retrieves docs with filtering and pagination
	List(filter string, params utils.PaginationParams) ([]DocListItem, int64, error)
}
