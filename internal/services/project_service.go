package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haojie/dochub-api/internal/logger"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/repository"
	"github.com/haojie/dochub-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectNameTaken   = errors.New("project with this name already exists for this owner")
	ErrInvalidProjectName = errors.New("project name cannot be empty")
	ErrUnknownViewerUser  = errors.New("viewer list contains unknown user")
	ErrNotProjectOwner    = errors.New("only the project owner can modify viewers")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Viewers     []uint64
	ProjectType models.ProjectType
	OwnerID     uint64
}

// CreateProject creates a project with its initial viewer list. An
// owner cannot hold two projects with the same name.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidProjectName
	}

	taken, err := s.projectRepo.ExistsByNameAndOwner(name, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}
	if taken {
		return nil, ErrProjectNameTaken
	}

	if err := s.checkViewersExist(input.Viewers); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        name,
		OwnerID:     input.OwnerID,
		ProjectType: input.ProjectType,
	}

	if err := s.projectRepo.CreateWithViewers(project, dedupe(input.Viewers)); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.Infow("project created", "project_id", project.ID, "owner_id", input.OwnerID)
	return project, nil
}

// UpdateViewers replaces the project's viewer set with desired. The
// actor must be the project owner; the reconciliation itself is atomic.
func (s *ProjectService) UpdateViewers(projectID, actorID uint64, desired []uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if project.OwnerID != actorID {
		return ErrNotProjectOwner
	}

	if err := s.checkViewersExist(desired); err != nil {
		return err
	}

	if err := s.projectRepo.ReconcileViewers(projectID, dedupe(desired)); err != nil {
		return fmt.Errorf("failed to update project viewers: %w", err)
	}

	logger.Infow("project viewers updated", "project_id", projectID, "viewer_count", len(desired))
	return nil
}

// ActiveViewers returns the user IDs currently allowed to view the project.
func (s *ProjectService) ActiveViewers(projectID uint64) ([]uint64, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return s.projectRepo.ActiveViewerIDs(projectID)
}

// ListProjects returns projects matching the filter with pagination.
func (s *ProjectService) ListProjects(filter string, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// ListViewerCandidates returns the users an actor may grant view
// access to: superusers see everyone, others only themselves.
func (s *ProjectService) ListViewerCandidates(actorID uint64, isSuperuser bool, filter string, params utils.PaginationParams) ([]models.User, int64, error) {
	var visibleTo *uint64
	if !isSuperuser {
		visibleTo = &actorID
	}

	users, total, err := s.userRepo.List(filter, params, visibleTo)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list viewer candidates: %w", err)
	}
	return users, total, nil
}

func (s *ProjectService) checkViewersExist(viewerIDs []uint64) error {
	unique := dedupe(viewerIDs)
	if len(unique) == 0 {
		return nil
	}
	count, err := s.userRepo.CountByIDs(unique)
	if err != nil {
		return fmt.Errorf("failed to check viewer users: %w", err)
	}
	if count != int64(len(unique)) {
		return ErrUnknownViewerUser
	}
	return nil
}

func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
