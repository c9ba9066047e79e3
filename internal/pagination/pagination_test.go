package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListQuery_Defaults(t *testing.T) {
	q := ParseListQuery(queryContext(t, ""))

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, "", q.Search)
	assert.False(t, q.All)
	assert.False(t, q.Dropdown)
}

func TestParseListQuery_Values(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     ListQuery
	}{
		{
			name:     "explicit values",
			rawQuery: "page=3&pageSize=25&q=api&all=true&dropdown=1",
			want:     ListQuery{Page: 3, PageSize: 25, Search: "api", All: true, Dropdown: true},
		},
		{
			name:     "invalid page falls back",
			rawQuery: "page=abc&pageSize=-5",
			want:     ListQuery{Page: 1, PageSize: 10},
		},
		{
			name:     "zero page falls back",
			rawQuery: "page=0&pageSize=0",
			want:     ListQuery{Page: 1, PageSize: 10},
		},
		{
			name:     "pageSize clamped to max",
			rawQuery: "pageSize=5000",
			want:     ListQuery{Page: 1, PageSize: 100},
		},
		{
			name:     "search trimmed",
			rawQuery: "q=%20%20hello%20%20",
			want:     ListQuery{Page: 1, PageSize: 10, Search: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListQuery(queryContext(t, tt.rawQuery))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Paged(t *testing.T) {
	w := Resolve(100, ListQuery{Page: 3, PageSize: 10})

	assert.Equal(t, 20, w.Skip)
	assert.Equal(t, 10, w.Take)
	assert.Equal(t, 3, w.Page)
	assert.Equal(t, 10, w.PageSize)
}

func TestResolve_PagedEchoesRawPage(t *testing.T) {
	// An out-of-range page is not clamped here: the fetch runs with the raw
	// offset and yields an empty list, while MetaFor points at the nearest
	// valid page.
	w := Resolve(22, ListQuery{Page: 5, PageSize: 10})

	assert.Equal(t, 40, w.Skip)
	assert.Equal(t, 5, w.Page)
}

func TestResolve_AllMode(t *testing.T) {
	w := Resolve(37, ListQuery{Page: 4, PageSize: 10, All: true})

	assert.Equal(t, 0, w.Skip)
	assert.Equal(t, -1, w.Take)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 37, w.PageSize)
}

func TestResolve_AllModeEmptyTotal(t *testing.T) {
	// With nothing to return, pageSize falls back to the requested value
	// rather than reporting zero.
	w := Resolve(0, ListQuery{Page: 1, PageSize: 10, All: true})

	assert.Equal(t, 10, w.PageSize)
}

func TestMetaFor(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		pageSize int
		want     Meta
	}{
		{
			name: "last partial page", total: 22, page: 3, pageSize: 10,
			want: Meta{Page: 3, PageSize: 10, Total: 22, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "out of range page clamped", total: 22, page: 5, pageSize: 10,
			want: Meta{Page: 3, PageSize: 10, Total: 22, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "first of many", total: 100, page: 1, pageSize: 10,
			want: Meta{Page: 1, PageSize: 10, Total: 100, TotalPages: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", total: 100, page: 5, pageSize: 10,
			want: Meta{Page: 5, PageSize: 10, Total: 100, TotalPages: 10, HasNext: true, HasPrev: true},
		},
		{
			name: "exact multiple", total: 30, page: 3, pageSize: 10,
			want: Meta{Page: 3, PageSize: 10, Total: 30, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "single page", total: 7, page: 1, pageSize: 10,
			want: Meta{Page: 1, PageSize: 10, Total: 7, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "zero total", total: 0, page: 4, pageSize: 10,
			want: Meta{Page: 1, PageSize: 10, Total: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "zero pageSize", total: 50, page: 1, pageSize: 0,
			want: Meta{Page: 1, PageSize: 0, Total: 50, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "page below range clamped up", total: 50, page: 0, pageSize: 10,
			want: Meta{Page: 1, PageSize: 10, Total: 50, TotalPages: 5, HasNext: true, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetaFor(tt.total, tt.page, tt.pageSize))
		})
	}
}
