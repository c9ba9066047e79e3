// Package pagination normalizes the list-query controls shared by every
// list endpoint: page/pageSize bounds, free-text search, the "all" mode
// used to populate dropdowns in full, and the dropdown projection flag.
package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery is the normalized form of the raw query parameters.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	All      bool
	Dropdown bool
}

// Window is the skip/take pair applied to the fetch query. Take < 0 means
// unbounded (all mode).
type Window struct {
	Skip     int
	Take     int
	Page     int
	PageSize int
}

// Meta is the pagination block returned alongside every item list.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ParseListQuery reads the shared list controls from the request query.
// Invalid or non-positive page/pageSize values fall back to defaults;
// pageSize is capped at MaxPageSize.
func ParseListQuery(c *gin.Context) ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page <= 0 {
		page = DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return ListQuery{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("q")),
		All:      parseBool(c.Query("all")),
		Dropdown: parseBool(c.Query("dropdown")),
	}
}

func parseBool(raw string) bool {
	return raw == "true" || raw == "1"
}

// Resolve turns the normalized query into a fetch window against a known
// total. In all mode the window is unbounded and the reported pageSize is
// the count actually returned, falling back to the requested pageSize when
// the result set is empty.
func Resolve(total int64, q ListQuery) Window {
	if q.All {
		pageSize := q.PageSize
		if total > 0 {
			pageSize = int(total)
		}
		return Window{Skip: 0, Take: -1, Page: 1, PageSize: pageSize}
	}
	return Window{
		Skip:     (q.Page - 1) * q.PageSize,
		Take:     q.PageSize,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

// MetaFor computes response metadata from the pre-pagination total. The
// returned page is clamped into [1, totalPages] so UI pagers never point at
// an out-of-range page; the fetch itself still uses the raw requested page,
// which simply yields an empty item list when out of range. Invalid page
// numbers never error, they degrade to empty results with corrective
// metadata.
func MetaFor(total int64, page, pageSize int) Meta {
	if total <= 0 || pageSize <= 0 {
		return Meta{
			Page:       1,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: 0,
			HasNext:    false,
			HasPrev:    false,
		}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Meta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
