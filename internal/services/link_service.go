package services

import (
	"errors"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"gorm.io/gorm"
)

type LinkService struct {
	db *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

type LinkFilters struct {
	ProjectID  string
	CodebaseID string
}

func (s *LinkService) baseQuery(userID, search string, f LinkFilters) *gorm.DB {
	q := s.db.Model(&models.Link{}).
		Scopes(
			scope.OwnedLinks(userID),
			scope.ParentFilter("links.project_id", f.ProjectID),
			scope.ParentFilter("links.codebase_id", f.CodebaseID),
		)
	if search != "" {
		// Ownership filters on the denormalized user_id, so the project
		// join here exists only to search by parent name.
		q = q.Joins("JOIN projects ON projects.id = links.project_id").
			Where("LOWER(links.title) LIKE ? OR LOWER(projects.name) LIKE ?",
				searchPattern(search), searchPattern(search))
	}
	return q
}

func parseLinkFilters(rawProjectID, rawCodebaseID string) (LinkFilters, error) {
	projectID, err := scope.FilterID(rawProjectID)
	if err != nil {
		return LinkFilters{}, err
	}
	codebaseID, err := scope.FilterID(rawCodebaseID)
	if err != nil {
		return LinkFilters{}, err
	}
	return LinkFilters{ProjectID: projectID, CodebaseID: codebaseID}, nil
}

func (s *LinkService) List(userID string, q pagination.ListQuery, rawProjectID, rawCodebaseID string) ([]models.LinkDTO, pagination.Meta, error) {
	f, err := parseLinkFilters(rawProjectID, rawCodebaseID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.baseQuery(userID, q.Search, f).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	var links []models.Link
	if err := applyWindow(s.baseQuery(userID, q.Search, f), w).
		Preload("Project").
		Preload("Codebase").
		Order("links.updated_at DESC").
		Find(&links).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]models.LinkDTO, 0, len(links))
	for i := range links {
		items = append(items, links[i].ToDTO())
	}
	return items, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

// ListOptions aliases the link title into the option name so dropdowns
// consume the same {id, name} shape as every other entity.
func (s *LinkService) ListOptions(userID string, q pagination.ListQuery, rawProjectID, rawCodebaseID string) ([]models.Option, pagination.Meta, error) {
	f, err := parseLinkFilters(rawProjectID, rawCodebaseID)
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
		Select("links.id AS id, links.title AS name").
		Order("links.title ASC").
		Scan(&options).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return options, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *LinkService) Get(userID, id string) (models.LinkDTO, error) {
	var link models.Link
	err := s.db.Scopes(scope.OwnedLinks(userID)).
		Where("links.id = ?", id).
		Preload("Project").
		Preload("Codebase").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LinkDTO{}, notFound("Link")
		}
		return models.LinkDTO{}, err
	}
	return link.ToDTO(), nil
}

// guardParents validates the project first, then, only when a codebase is
// supplied, that the codebase sits under that same project.
func (s *LinkService) guardParents(userID string, req models.LinkRequest) error {
	if err := requireProject(s.db, userID, req.ProjectID); err != nil {
		return err
	}
	if req.CodebaseID != nil {
		return requireCodebaseForProject(s.db, userID, *req.CodebaseID, req.ProjectID)
	}
	return nil
}

// Create copies the owner id from the authenticated session into the
// denormalized user_id column. It is never accepted from client input and
// never updated afterwards.
func (s *LinkService) Create(userID string, req models.LinkRequest) (models.LinkDTO, error) {
	if err := s.guardParents(userID, req); err != nil {
		return models.LinkDTO{}, err
	}

	link := models.Link{
		UserID:     userID,
		ProjectID:  req.ProjectID,
		CodebaseID: req.CodebaseID,
		Title:      req.Title,
		URL:        req.URL,
		Category:   req.Category,
		Notes:      req.Notes,
	}
	if err := s.db.Create(&link).Error; err != nil {
		return models.LinkDTO{}, err
	}
	return s.Get(userID, link.ID)
}

func (s *LinkService) Update(userID, id string, req models.LinkRequest) (models.LinkDTO, error) {
	if err := s.guardParents(userID, req); err != nil {
		return models.LinkDTO{}, err
	}

	res := s.db.Model(&models.Link{}).
		Where("links.id = ? AND links.user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"project_id":  req.ProjectID,
			"codebase_id": req.CodebaseID,
			"title":       req.Title,
			"url":         req.URL,
			"category":    req.Category,
			"notes":       req.Notes,
		})
	if res.Error != nil {
		return models.LinkDTO{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.LinkDTO{}, notFound("Link")
	}
	return s.Get(userID, id)
}

func (s *LinkService) Delete(userID, id string) error {
	res := s.db.Where("links.id = ? AND links.user_id = ?", id, userID).
		Delete(&models.Link{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("Link")
	}
	return nil
}
