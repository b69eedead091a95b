package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/dto"
	"github.com/haojie/dochub-api/internal/middleware"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/response"
	"github.com/haojie/dochub-api/internal/services"
	"github.com/haojie/dochub-api/internal/utils"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create creates a project owned by the caller.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name        string             `json:"name" binding:"required,max=255"`
		Viewers     []uint64           `json:"viewers"`
		ProjectType models.ProjectType `json:"project_type" binding:"omitempty,oneof=0 1"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Viewers:     req.Viewers,
		ProjectType: req.ProjectType,
		OwnerID:     userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.Created(c, "project created", gin.H{"project_id": project.ID})
}

// List returns projects matching the optional filter.
func (h *ProjectHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := c.Query("q")

	projects, total, err := h.projectService.ListProjects(filter, params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.Success(c, "ok", utils.PageData{
		List:     dto.ToProjectDTOs(projects),
		Total:    total,
		PageNum:  params.PageNum,
		PageSize: params.PageSize,
	})
}

// UpdateViewers replaces the viewer list of a project the caller owns.
func (h *ProjectHandler) UpdateViewers(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	type UpdateViewersRequest struct {
		Viewers []uint64 `json:"viewers"`
	}

	var req UpdateViewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	if err := h.projectService.UpdateViewers(projectID, userID, req.Viewers); err != nil {
		respondProjectError(c, err)
		return
	}

	response.Success(c, "project viewers updated", nil)
}

// ListViewerCandidates returns the users the caller can grant view access to.
func (h *ProjectHandler) ListViewerCandidates(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := c.Query("q")

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	users, total, err := h.projectService.ListViewerCandidates(userID, middleware.IsSuperuser(c), filter, params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.Success(c, "ok", utils.PageData{
		List:     dto.ToUserDTOs(users),
		Total:    total,
		PageNum:  params.PageNum,
		PageSize: params.PageSize,
	})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProjectOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNameTaken),
		errors.Is(err, services.ErrInvalidProjectName),
		errors.Is(err, services.ErrUnknownViewerUser):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
