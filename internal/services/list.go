package services

import (
	"strings"

	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"gorm.io/gorm"
)

// applyWindow bounds the fetch query. A negative Take means all mode: no
// offset, no limit.
func applyWindow(q *gorm.DB, w pagination.Window) *gorm.DB {
	if w.Take < 0 {
		return q
	}
	return q.Offset(w.Skip).Limit(w.Take)
}

// searchPattern builds the case-insensitive contains pattern. LOWER/LIKE
// behaves the same on postgres and the sqlite used in tests.
func searchPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
