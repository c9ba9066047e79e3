package services

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"github.com/TanzilIslam/dev-home-sub000/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FileService struct {
	db    *gorm.DB
	store storage.Store
}

func NewFileService(db *gorm.DB, store storage.Store) *FileService {
	return &FileService{db: db, store: store}
}

// FileUpload is the parsed multipart payload handed in by the handler.
type FileUpload struct {
	Filename   string
	MimeType   string
	Reader     io.Reader
	ClientID   *string
	ProjectID  *string
	CodebaseID *string
}

type FileFilters struct {
	ClientID   string
	ProjectID  string
	CodebaseID string
}

func (s *FileService) baseQuery(userID, search string, f FileFilters) *gorm.DB {
	q := s.db.Model(&models.File{}).
		Scopes(
			scope.OwnedFiles(userID),
			scope.ParentFilter("files.client_id", f.ClientID),
			scope.ParentFilter("files.project_id", f.ProjectID),
			scope.ParentFilter("files.codebase_id", f.CodebaseID),
		)
	if search != "" {
		q = q.Where("LOWER(files.filename) LIKE ?", searchPattern(search))
	}
	return q
}

func parseFileFilters(rawClientID, rawProjectID, rawCodebaseID string) (FileFilters, error) {
	clientID, err := scope.FilterID(rawClientID)
	if err != nil {
		return FileFilters{}, err
	}
	projectID, err := scope.FilterID(rawProjectID)
	if err != nil {
		return FileFilters{}, err
	}
	codebaseID, err := scope.FilterID(rawCodebaseID)
	if err != nil {
		return FileFilters{}, err
	}
	return FileFilters{ClientID: clientID, ProjectID: projectID, CodebaseID: codebaseID}, nil
}

func (s *FileService) List(userID string, q pagination.ListQuery, rawClientID, rawProjectID, rawCodebaseID string) ([]models.FileDTO, pagination.Meta, error) {
	f, err := parseFileFilters(rawClientID, rawProjectID, rawCodebaseID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.baseQuery(userID, q.Search, f).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	w := pagination.Resolve(total, q)

	var files []models.File
	if err := applyWindow(s.baseQuery(userID, q.Search, f), w).
		Order("files.updated_at DESC").
		Find(&files).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]models.FileDTO, 0, len(files))
	for i := range files {
		items = append(items, files[i].ToDTO())
	}
	return items, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *FileService) ListOptions(userID string, q pagination.ListQuery, rawClientID, rawProjectID, rawCodebaseID string) ([]models.Option, pagination.Meta, error) {
	f, err := parseFileFilters(rawClientID, rawProjectID, rawCodebaseID)
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
		Select("files.id AS id, files.filename AS name").
		Order("files.filename ASC").
		Scan(&options).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return options, pagination.MetaFor(total, w.Page, w.PageSize), nil
}

func (s *FileService) Get(userID, id string) (models.FileDTO, error) {
	file, err := s.fetch(userID, id)
	if err != nil {
		return models.FileDTO{}, err
	}
	return file.ToDTO(), nil
}

func (s *FileService) fetch(userID, id string) (*models.File, error) {
	var file models.File
	err := s.db.Scopes(scope.OwnedFiles(userID)).
		Where("files.id = ?", id).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("File")
		}
		return nil, err
	}
	return &file, nil
}

// Open returns the stored blob for download along with its metadata.
func (s *FileService) Open(userID, id string) (*models.File, io.ReadCloser, error) {
	file, err := s.fetch(userID, id)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.store.Open(file.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return file, r, nil
}

// Create saves the blob first, then the row; a failed row insert removes
// the just-written blob so storage does not accumulate orphans.
func (s *FileService) Create(userID string, upload FileUpload) (models.FileDTO, error) {
	tags, err := parseFileFilters(
		deref(upload.ClientID), deref(upload.ProjectID), deref(upload.CodebaseID),
	)
	if err != nil {
		return models.FileDTO{}, err
	}

	path := userID + "/" + uuid.NewString() + filepath.Ext(upload.Filename)
	size, err := s.store.Save(path, upload.Reader)
	if err != nil {
		return models.FileDTO{}, err
	}

	file := models.File{
		UserID:      userID,
		ClientID:    optional(tags.ClientID),
		ProjectID:   optional(tags.ProjectID),
		CodebaseID:  optional(tags.CodebaseID),
		Filename:    upload.Filename,
		StoragePath: path,
		MimeType:    upload.MimeType,
		SizeBytes:   size,
	}
	if err := s.db.Create(&file).Error; err != nil {
		if delErr := s.store.Delete(path); delErr != nil {
			log.Warn().Err(delErr).Str("path", path).Msg("failed to remove blob after insert failure")
		}
		return models.FileDTO{}, err
	}
	return file.ToDTO(), nil
}

// Update renames or retags the file; the blob is immutable after upload.
func (s *FileService) Update(userID, id string, req models.FileUpdateRequest) (models.FileDTO, error) {
	tags, err := parseFileFilters(deref(req.ClientID), deref(req.ProjectID), deref(req.CodebaseID))
	if err != nil {
		return models.FileDTO{}, err
	}

	res := s.db.Model(&models.File{}).
		Where("files.id = ? AND files.user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"filename":    req.Filename,
			"client_id":   optional(tags.ClientID),
			"project_id":  optional(tags.ProjectID),
			"codebase_id": optional(tags.CodebaseID),
		})
	if res.Error != nil {
		return models.FileDTO{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.FileDTO{}, notFound("File")
	}
	return s.Get(userID, id)
}

func (s *FileService) Delete(userID, id string) error {
	file, err := s.fetch(userID, id)
	if err != nil {
		return err
	}

	res := s.db.Where("files.id = ? AND files.user_id = ?", id, userID).
		Delete(&models.File{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("File")
	}

	if err := s.store.Delete(file.StoragePath); err != nil {
		log.Warn().Err(err).Str("path", file.StoragePath).Msg("failed to remove blob for deleted file")
	}
	return nil
}

// cleanupByTag removes file rows tagged with a just-deleted parent entity
// and their blobs. Best-effort: failures are logged, never surfaced, so the
// parent delete is not blocked by storage trouble.
func (s *FileService) cleanupByTag(userID, column, id string) {
	var files []models.File
	if err := s.db.Scopes(scope.OwnedFiles(userID)).
		Where("files."+column+" = ?", id).
		Find(&files).Error; err != nil {
		log.Warn().Err(err).Str(column, id).Msg("failed to list files for cleanup")
		return
	}

	for i := range files {
		if err := s.db.Delete(&models.File{}, "id = ?", files[i].ID).Error; err != nil {
			log.Warn().Err(err).Str("file_id", files[i].ID).Msg("failed to delete file row during cleanup")
			continue
		}
		if err := s.store.Delete(files[i].StoragePath); err != nil {
			log.Warn().Err(err).Str("path", files[i].StoragePath).Msg("failed to remove blob during cleanup")
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
