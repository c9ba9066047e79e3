package services

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"gorm.io/gorm"
)

// The guard functions verify that a referenced parent id exists AND belongs
// to the requesting user before a child write is allowed. Both failure modes
// return the same NotFoundError so cross-tenant probing learns nothing.

func requireClient(db *gorm.DB, userID, clientID string) error {
	var count int64
	err := db.Model(&models.Client{}).
		Scopes(scope.OwnedClients(userID)).
		Where("clients.id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return notFound("Client")
	}
	return nil
}

func requireProject(db *gorm.DB, userID, projectID string) error {
	var count int64
	err := db.Model(&models.Project{}).
		Scopes(scope.OwnedProjects(userID)).
		Where("projects.id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return notFound("Project")
	}
	return nil
}

// requireCodebaseForProject additionally pins the codebase to the given
// project, so a link can never attach to a codebase from a different
// project even when both belong to the caller.
func requireCodebaseForProject(db *gorm.DB, userID, codebaseID, projectID string) error {
	var count int64
	err := db.Model(&models.Codebase{}).
		Scopes(scope.OwnedCodebases(userID)).
		Where("codebases.id = ? AND codebases.project_id = ?", codebaseID, projectID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Message: "Codebase not found for the selected project."}
	}
	return nil
}

// ownedClientIDs returns a subquery of the caller's client ids, used to
// scope affected-rows updates on child tables.
func ownedClientIDs(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&models.Client{}).Select("clients.id").Where("clients.user_id = ?", userID)
}

// ownedProjectIDs returns a subquery of the caller's project ids.
func ownedProjectIDs(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&models.Project{}).Select("projects.id").
		Joins("JOIN clients ON clients.id = projects.client_id").
		Where("clients.user_id = ?", userID)
}
