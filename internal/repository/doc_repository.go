package repository

import (
	"github.com/haojie/dochub-api/internal/database"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/utils"
	"gorm.io/gorm"
)

// GormDocRepository is a GORM implementation of DocRepository
type GormDocRepository struct {
	db *gorm.DB
}

// NewDocRepository creates a new DocRepository
func NewDocRepository(db *gorm.DB) DocRepository {
	return &GormDocRepository{db: db}
}

// Create creates a new doc
func (r *GormDocRepository) Create(doc *models.Doc) error {
	return r.db.Create(doc).Error
}

// List retrieves docs with filtering and pagination. Project and owner
// names are resolved with explicit joins into a flat projection.
func (r *GormDocRepository) List(filter string, params utils.PaginationParams) ([]DocListItem, int64, error) {
	query := r.db.Model(&models.Doc{}).Where("doc.is_deleted = ?", false)

	if filter != "" {
		query = query.Where("doc.file_name LIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []DocListItem
	err := query.
		Select("doc.id, doc.file_name, doc.file_uuid, doc.status, doc.project_id, doc.owner_id, doc.create_time, project.name AS project_name, user.username AS owner_name").
		Joins("LEFT JOIN project ON project.id = doc.project_id").
		Joins("LEFT JOIN user ON user.id = doc.owner_id").
		Order("doc.id ASC").
		Scopes(database.Paginate(params)).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
