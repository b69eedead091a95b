package services

import (
	"fmt"

	"github.com/haojie/dochub-api/internal/repository"
	"github.com/haojie/dochub-api/internal/utils"
)

// DocService provides business logic for document listing.
type DocService struct {
	docRepo repository.DocRepository
}

// NewDocService creates a new DocService.
func NewDocService(docRepo repository.DocRepository) *DocService {
	return &DocService{docRepo: docRepo}
}

// ListDocs returns docs matching the filter with pagination.
func (s *DocService) ListDocs(filter string, params utils.PaginationParams) ([]repository.DocListItem, int64, error) {
	docs, total, err := s.docRepo.List(filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list docs: %w", err)
	}
	return docs, total, nil
}
