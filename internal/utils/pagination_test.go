package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func paginationFor(t *testing.T, query string) PaginationParams {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	params := paginationFor(t, "page_num=3&page_size=20")
	require.Equal(t, 3, params.PageNum)
	require.Equal(t, 20, params.PageSize)
	require.Equal(t, 40, params.Offset)

	// defaults
	params = paginationFor(t, "")
	require.Equal(t, constants.DefaultPageNum, params.PageNum)
	require.Equal(t, constants.DefaultPageSize, params.PageSize)
	require.Equal(t, 0, params.Offset)

	// out-of-range values are clamped
	params = paginationFor(t, "page_num=0&page_size=99999")
	require.Equal(t, constants.DefaultPageNum, params.PageNum)
	require.Equal(t, constants.MaxPageSize, params.PageSize)

	params = paginationFor(t, "page_num=-5&page_size=-1")
	require.Equal(t, constants.DefaultPageNum, params.PageNum)
	require.Equal(t, constants.DefaultPageSize, params.PageSize)
}
