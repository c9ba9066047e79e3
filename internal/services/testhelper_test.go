package services

import (
	"fmt"
	"testing"

	"github.com/TanzilIslam/dev-home-sub000/internal/database"
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
// A single connection is forced so every query sees the same `:memory:`
// database, and foreign keys are enabled so FK cascades behave like the
// production store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupDisk(t *testing.T) *storage.Disk {
	t.Helper()
	d, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	return d
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createClient(t *testing.T, db *gorm.DB, userID, name string) *models.Client {
	t.Helper()
	client := &models.Client{
		UserID:         userID,
		Name:           name,
		EngagementType: models.EngagementProjectBased,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func createProject(t *testing.T, db *gorm.DB, clientID, name string) *models.Project {
	t.Helper()
	project := &models.Project{
		ClientID: clientID,
		Name:     name,
		Status:   models.ProjectStatusActive,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createCodebase(t *testing.T, db *gorm.DB, projectID, name string) *models.Codebase {
	t.Helper()
	codebase := &models.Codebase{
		ProjectID: projectID,
		Name:      name,
		Type:      models.CodebaseTypeBackend,
	}
	require.NoError(t, db.Create(codebase).Error)
	return codebase
}

func createLink(t *testing.T, db *gorm.DB, userID, projectID string, codebaseID *string, title string) *models.Link {
	t.Helper()
	link := &models.Link{
		UserID:     userID,
		ProjectID:  projectID,
		CodebaseID: codebaseID,
		Title:      title,
		URL:        "https://example.com",
		Category:   models.LinkCategoryRepository,
	}
	require.NoError(t, db.Create(link).Error)
	return link
}

// seedClients creates n clients named client-01 .. client-n.
func seedClients(t *testing.T, db *gorm.DB, userID string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		createClient(t, db, userID, fmt.Sprintf("client-%02d", i))
	}
}
