package services

import (
	"errors"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"gorm.io/gorm"
)

type CodebaseService struct {
	db    *gorm.DB
	files *FileService
}

func NewCodebaseService(db *gorm.DB, files *FileService) *CodebaseService {
	return &CodebaseService{db: db, files: files}
}

type CodebaseFilters struct {
	ProjectID string
	ClientID  string
}

func (s *CodebaseService) baseQuery(userID, search string, f CodebaseFilters) *gorm.DB {
	q := s.db.Model(&models.Codebase{}).
		Scopes(
			scope.OwnedCodebases(userID),
			scope.ParentFilter("codebases.project_id", f.ProjectID),
			scope.ParentFilter("projects.client_id", f.ClientID),
		)
	if search != "" {
		q = q.Where("LOWER(codebases.name) LIKE ? OR LOWER(projects.name) LIKE ?",
			searchPattern(search), searchPattern(search))
	}
	return q
}

func parseCodebaseFilters(rawProjectID, rawClientID string) (CodebaseFilters, error) {
	projectID, err := scope.FilterID(rawProjectID)
	if err != nil {
		return CodebaseFilters{}, err
	}
	clientID, err := scope.FilterID(rawClientID)
	if err != nil {
		return CodebaseFilters{}, err
	}
	return CodebaseFilters{ProjectID: projectID, ClientID: clientID}, nil
}

func (s *CodebaseService) List(userID string, q pagination.ListQuery, rawProjectID, rawClientID string) ([]models.CodebaseDTO, pagination.Meta, error) {
	f, err := parseCodebaseFilters(rawProjectID, rawClientID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.baseQuery(userID, q.Search, f).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	var codebases []models.Codebase
	if err := applyWindow(s.baseQuery(userID, q.Search, f), w).
		Preload("Project.Client").
		Order("codebases.updated_at DESC").
		Find(&codebases).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]models.CodebaseDTO, 0, len(codebases))
	for i := range codebases {
		items = append(items, codebases[i].ToDTO())
	}
	return items, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *CodebaseService) ListOptions(userID string, q pagination.ListQuery, rawProjectID, rawClientID string) ([]models.Option, pagination.Meta, error) {
	f, err := parseCodebaseFilters(rawProjectID, rawClientID)
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
		Select("codebases.id AS id, codebases.name AS name").
		Order("codebases.name ASC").
		Scan(&options).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return options, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *CodebaseService) Get(userID, id string) (models.CodebaseDTO, error) {
	return getCodebase(s.db, userID, id)
}

func getCodebase(db *gorm.DB, userID, id string) (models.CodebaseDTO, error) {
	var codebase models.Codebase
	err := db.Scopes(scope.OwnedCodebases(userID)).
		Where("codebases.id = ?", id).
		Preload("Project.Client").
		First(&codebase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CodebaseDTO{}, notFound("Codebase")
		}
		return models.CodebaseDTO{}, err
	}
	return codebase.ToDTO(), nil
}

func (s *CodebaseService) Create(userID string, req models.CodebaseRequest) (models.CodebaseDTO, error) {
	if err := requireProject(s.db, userID, req.ProjectID); err != nil {
		return models.CodebaseDTO{}, err
	}

	codebase := models.Codebase{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := s.db.Create(&codebase).Error; err != nil {
		return models.CodebaseDTO{}, err
	}
	return s.Get(userID, codebase.ID)
}

// Update reassigns the codebase when project_id changes and cascades the
// new project onto every link that references this codebase, so no link is
// left pointing across projects. The update, the cascade, and the re-fetch
// commit as one transaction or not at all.
func (s *CodebaseService) Update(userID, id string, req models.CodebaseRequest) (models.CodebaseDTO, error) {
	if err := requireProject(s.db, userID, req.ProjectID); err != nil {
		return models.CodebaseDTO{}, err
	}

	var dto models.CodebaseDTO
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Codebase{}).
			Where("codebases.id = ? AND codebases.project_id IN (?)", id, ownedProjectIDs(tx, userID)).
			Updates(map[string]interface{}{
				"project_id":  req.ProjectID,
				"name":        req.Name,
				"type":        req.Type,
				"description": req.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound("Codebase")
		}

		if err := tx.Model(&models.Link{}).
			Where("links.codebase_id = ? AND links.project_id <> ?", id, req.ProjectID).
			Update("project_id", req.ProjectID).Error; err != nil {
			return err
		}

		var err error
		dto, err = getCodebase(tx, userID, id)
		return err
	})
	if err != nil {
		return models.CodebaseDTO{}, err
	}
	return dto, nil
}

func (s *CodebaseService) Delete(userID, id string) error {
	res := s.db.Where("codebases.id = ? AND codebases.project_id IN (?)", id, ownedProjectIDs(s.db, userID)).
		Delete(&models.Codebase{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("Codebase")
	}

	if s.files != nil {
		s.files.cleanupByTag(userID, "codebase_id", id)
	}
	return nil
}
