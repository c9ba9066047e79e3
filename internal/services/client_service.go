package services

import (
	"errors"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"gorm.io/gorm"
)

type ClientService struct {
	db    *gorm.DB
	files *FileService
}

func NewClientService(db *gorm.DB, files *FileService) *ClientService {
	return &ClientService{db: db, files: files}
}

func (s *ClientService) baseQuery(userID, search string) *gorm.DB {
	q := s.db.Model(&models.Client{}).Scopes(scope.OwnedClients(userID))
	if search != "" {
		q = q.Where("LOWER(clients.name) LIKE ?", searchPattern(search))
	}
	return q
}

// List returns the full client DTOs, most recently touched first. Meta is
// computed from the pre-pagination total.
func (s *ClientService) List(userID string, q pagination.ListQuery) ([]models.ClientDTO, pagination.Meta, error) {
	var total int64
	if err := s.baseQuery(userID, q.Search).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	var clients []models.Client
	if err := applyWindow(s.baseQuery(userID, q.Search), w).
		Order("clients.updated_at DESC").
		Find(&clients).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]models.ClientDTO, 0, len(clients))
	for i := range clients {
		items = append(items, clients[i].ToDTO())
	}
	return items, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

// ListOptions returns the {id, name} dropdown projection, alphabetical.
func (s *ClientService) ListOptions(userID string, q pagination.ListQuery) ([]models.Option, pagination.Meta, error) {
	var total int64
	if err := s.baseQuery(userID, q.Search).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	options := make([]models.Option, 0)
	if err := applyWindow(s.baseQuery(userID, q.Search), w).
		Select("clients.id AS id, clients.name AS name").
		Order("clients.name ASC").
		Scan(&options).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return options, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *ClientService) Get(userID, id string) (models.ClientDTO, error) {
	var client models.Client
	err := s.db.Scopes(scope.OwnedClients(userID)).
		Where("clients.id = ?", id).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ClientDTO{}, notFound("Client")
		}
		return models.ClientDTO{}, err
	}
	return client.ToDTO(), nil
}

// normalizeEngagement enforces the engagement invariant: PROJECT_BASED
// clients carry no working-time fields, TIME_BASED clients must carry both.
func normalizeEngagement(req *models.ClientRequest) error {
	switch req.EngagementType {
	case models.EngagementProjectBased:
		req.WorkingDaysPerWeek = nil
		req.WorkingHoursPerDay = nil
	case models.EngagementTimeBased:
		fields := map[string]string{}
		if req.WorkingDaysPerWeek == nil {
			fields["workingDaysPerWeek"] = "Required for time-based engagements."
		}
		if req.WorkingHoursPerDay == nil {
			fields["workingHoursPerDay"] = "Required for time-based engagements."
		}
		if len(fields) > 0 {
			return &ValidationError{Message: "Validation failed", Fields: fields}
		}
	}
	return nil
}

func (s *ClientService) Create(userID string, req models.ClientRequest) (models.ClientDTO, error) {
	if err := normalizeEngagement(&req); err != nil {
		return models.ClientDTO{}, err
	}

	client := models.Client{
		UserID:             userID,
		Name:               req.Name,
		EngagementType:     req.EngagementType,
		WorkingDaysPerWeek: req.WorkingDaysPerWeek,
		WorkingHoursPerDay: req.WorkingHoursPerDay,
		Notes:              req.Notes,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return models.ClientDTO{}, err
	}
	return client.ToDTO(), nil
}

// Update is an affected-rows update scoped by (id AND ownership): zero rows
// affected reads as not found, whether the row is absent or another user's.
func (s *ClientService) Update(userID, id string, req models.ClientRequest) (models.ClientDTO, error) {
	if err := normalizeEngagement(&req); err != nil {
		return models.ClientDTO{}, err
	}

	res := s.db.Model(&models.Client{}).
		Where("clients.id = ? AND clients.user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":                  req.Name,
			"engagement_type":       req.EngagementType,
			"working_days_per_week": req.WorkingDaysPerWeek,
			"working_hours_per_day": req.WorkingHoursPerDay,
			"notes":                 req.Notes,
		})
	if res.Error != nil {
		return models.ClientDTO{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.ClientDTO{}, notFound("Client")
	}
	return s.Get(userID, id)
}

func (s *ClientService) Delete(userID, id string) error {
	res := s.db.Where("clients.id = ? AND clients.user_id = ?", id, userID).
		Delete(&models.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("Client")
	}

	// Attachments tagged with this client: remove rows and blobs (blob
	// removal is best-effort, never fails the delete).
	if s.files != nil {
		s.files.cleanupByTag(userID, "client_id", id)
	}
	return nil
}
