// Package scope builds the row-level ownership predicates applied to every
// query. Each scope restricts rows to the requesting user's ownership tree:
// directly on user_id where the column exists, or through foreign-key joins
// for entities owned transitively (Project through Client, Codebase through
// Project and Client). A query composed with one of these scopes can never
// return a row whose ownership chain resolves to another user.
package scope

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidFilter is returned when a parent-id query filter is
// syntactically malformed. The request fails with 400 rather than silently
// ignoring the bad filter.
var ErrInvalidFilter = errors.New("invalid filters")

// OwnedClients restricts clients to those owned by userID.
func OwnedClients(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("clients.user_id = ?", userID)
	}
}

// OwnedProjects restricts projects to those whose parent client is owned by
// userID (one hop).
func OwnedProjects(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN clients ON clients.id = projects.client_id").
			Where("clients.user_id = ?", userID)
	}
}

// OwnedCodebases restricts codebases through Project and Client (two hops).
func OwnedCodebases(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN projects ON projects.id = codebases.project_id").
			Joins("JOIN clients ON clients.id = projects.client_id").
			Where("clients.user_id = ?", userID)
	}
}

// OwnedLinks filters on the denormalized links.user_id column, avoiding the
// two-hop join. The column is written once at creation from the session and
// never accepted from client input.
func OwnedLinks(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("links.user_id = ?", userID)
	}
}

// OwnedFiles filters on files.user_id. Scope tags (client/project/codebase
// columns) are applied separately and are not hierarchy-checked at read time.
func OwnedFiles(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("files.user_id = ?", userID)
	}
}

// FilterID validates a raw parent-id query filter. An absent filter returns
// ("", nil); a present one must be 1-64 characters after trimming. A filter
// only ever narrows within the ownership-scoped set, so syntactic shape is
// all that is checked here.
func FilterID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if raw != "" && (trimmed == "" || len(trimmed) > 64) {
		return "", ErrInvalidFilter
	}
	return trimmed, nil
}

// ParentFilter ANDs an equality filter on column when id is non-empty.
func ParentFilter(column, id string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == "" {
			return db
		}
		return db.Where(column+" = ?", id)
	}
}
