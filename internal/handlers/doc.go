package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/response"
	"github.com/haojie/dochub-api/internal/services"
	"github.com/haojie/dochub-api/internal/utils"
)

// DocHandler coordinates document-related HTTP handlers.
type DocHandler struct {
	docService *services.DocService
}

// NewDocHandler creates a new DocHandler.
func NewDocHandler(docService *services.DocService) *DocHandler {
	return &DocHandler{docService: docService}
}

// List returns docs matching the optional filter.
func (h *DocHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := c.Query("q")

	docs, total, err := h.docService.ListDocs(filter, params)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, "ok", utils.PageData{
		List:     docs,
		Total:    total,
		PageNum:  params.PageNum,
		PageSize: params.PageSize,
	})
}
