package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestGetPaginationDefaults(t *testing.T) {
	page, limit := GetPagination(paginationContext(t, ""))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)
}

func TestGetPaginationClampsOutOfRange(t *testing.T) {
	page, limit := GetPagination(paginationContext(t, "page=-1&limit=0"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)

	page, limit = GetPagination(paginationContext(t, "page=0&limit=500"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, MaxLimit, limit)
}

func TestGetPaginationRecoversFromMalformedInput(t *testing.T) {
	page, limit := GetPagination(paginationContext(t, "page=abc&limit=xyz"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)
}

func TestGetPaginationPassesThroughValidValues(t *testing.T) {
	page, limit := GetPagination(paginationContext(t, "page=3&limit=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = GetPagination(paginationContext(t, "limit=100"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, MaxLimit, limit)
}
