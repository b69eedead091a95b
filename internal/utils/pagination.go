package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/constants"
)

// PaginationParams holds the validated pagination parameters.
// PageNum is 1-indexed.
type PaginationParams struct {
	PageNum  int
	PageSize int
	Offset   int
}

// PageData is the shape of paginated list payloads in the response
// envelope.
type PageData struct {
	List     any   `json:"list"`
	Total    int64 `json:"total"`
	PageNum  int   `json:"page_num"`
	PageSize int   `json:"page_size"`
}

// GetPaginationParams extracts page_num/page_size from the query
// string, clamping the page size to the configured maximum.
func GetPaginationParams(c *gin.Context) PaginationParams {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page_num", strconv.Itoa(constants.DefaultPageNum)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return PaginationParams{
		PageNum:  pageNum,
		PageSize: pageSize,
		Offset:   (pageNum - 1) * pageSize,
	}
}
