package services

import (
	"errors"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"gorm.io/gorm"
)

type ProjectService struct {
	db    *gorm.DB
	files *FileService
}

func NewProjectService(db *gorm.DB, files *FileService) *ProjectService {
	return &ProjectService{db: db, files: files}
}

// ProjectFilters are the optional cascading filters accepted by the list
// endpoint. They narrow within the ownership-scoped set, never replace it.
type ProjectFilters struct {
	ClientID string
}

func (s *ProjectService) baseQuery(userID, search string, f ProjectFilters) *gorm.DB {
	q := s.db.Model(&models.Project{}).
		Scopes(scope.OwnedProjects(userID), scope.ParentFilter("projects.client_id", f.ClientID))
	if search != "" {
		// Search matches the project name or the parent client's name; the
		// ownership join already brings clients into scope.
		q = q.Where("LOWER(projects.name) LIKE ? OR LOWER(clients.name) LIKE ?",
			searchPattern(search), searchPattern(search))
	}
	return q
}

func parseProjectFilters(rawClientID string) (ProjectFilters, error) {
	clientID, err := scope.FilterID(rawClientID)
	if err != nil {
		return ProjectFilters{}, err
	}
	return ProjectFilters{ClientID: clientID}, nil
}

// List validates the cascading filters, counts under the combined
// predicate, then fetches one window with the parent client preloaded.
func (s *ProjectService) List(userID string, q pagination.ListQuery, rawClientID string) ([]models.ProjectDTO, pagination.Meta, error) {
	f, err := parseProjectFilters(rawClientID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.baseQuery(userID, q.Search, f).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	var projects []models.Project
	if err := applyWindow(s.baseQuery(userID, q.Search, f), w).
		Preload("Client").
		Order("projects.updated_at DESC").
		Find(&projects).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]models.ProjectDTO, 0, len(projects))
	for i := range projects {
		items = append(items, projects[i].ToDTO())
	}
	return items, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *ProjectService) ListOptions(userID string, q pagination.ListQuery, rawClientID string) ([]models.Option, pagination.Meta, error) {
	f, err := parseProjectFilters(rawClientID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.baseQuery(userID, q.Search, f).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	options := make([]models.Option, 0)
	if err := applyWindow(s.baseQuery(userID, q.Search, f), w).
		Select("projects.id AS id, projects.name AS name").
		Order("projects.name ASC").
		Scan(&options).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return options, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *ProjectService) Get(userID, id string) (models.ProjectDTO, error) {
	var project models.Project
	err := s.db.Scopes(scope.OwnedProjects(userID)).
		Where("projects.id = ?", id).
		Preload("Client").
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectDTO{}, notFound("Project")
		}
		return models.ProjectDTO{}, err
	}
	return project.ToDTO(), nil
}

func (s *ProjectService) Create(userID string, req models.ProjectRequest) (models.ProjectDTO, error) {
	if err := requireClient(s.db, userID, req.ClientID); err != nil {
		return models.ProjectDTO{}, err
	}

	project := models.Project{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return models.ProjectDTO{}, err
	}
	return s.Get(userID, project.ID)
}

func (s *ProjectService) Update(userID, id string, req models.ProjectRequest) (models.ProjectDTO, error) {
	// The target client_id may differ from the current one; either way it
	// must belong to the caller.
	if err := requireClient(s.db, userID, req.ClientID); err != nil {
		return models.ProjectDTO{}, err
	}

	res := s.db.Model(&models.Project{}).
		Where("projects.id = ? AND projects.client_id IN (?)", id, ownedClientIDs(s.db, userID)).
		Updates(map[string]interface{}{
			"client_id":   req.ClientID,
			"name":        req.Name,
			"description": req.Description,
			"status":      req.Status,
		})
	if res.Error != nil {
		return models.ProjectDTO{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.ProjectDTO{}, notFound("Project")
	}
	return s.Get(userID, id)
}

func (s *ProjectService) Delete(userID, id string) error {
	res := s.db.Where("projects.id = ? AND projects.client_id IN (?)", id, ownedClientIDs(s.db, userID)).
		Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("Project")
	}

	if s.files != nil {
		s.files.cleanupByTag(userID, "project_id", id)
	}
	return nil
}
