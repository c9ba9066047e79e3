package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is an uploaded attachment. The clientID/projectID/codebaseID columns
// are loose scope tags for filtering, not a strict ownership hierarchy; the
// owner is always UserID.
type File struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"userId" gorm:"index;not null;type:varchar(36)"`
	ClientID    *string   `json:"clientId" gorm:"index;type:varchar(36)"`
	ProjectID   *string   `json:"projectId" gorm:"index;type:varchar(36)"`
	CodebaseID  *string   `json:"codebaseId" gorm:"index;type:varchar(36)"`
	Filename    string    `json:"filename" gorm:"not null"`
	StoragePath string    `json:"-" gorm:"not null"`
	MimeType    string    `json:"mimeType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type FileDTO struct {
	ID         string  `json:"id"`
	ClientID   *string `json:"clientId"`
	ProjectID  *string `json:"projectId"`
	CodebaseID *string `json:"codebaseId"`
	Filename   string  `json:"filename"`
	MimeType   string  `json:"mimeType"`
	SizeBytes  int64   `json:"sizeBytes"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func (f *File) ToDTO() FileDTO {
	return FileDTO{
		ID:         f.ID,
		ClientID:   f.ClientID,
		ProjectID:  f.ProjectID,
		CodebaseID: f.CodebaseID,
		Filename:   f.Filename,
		MimeType:   f.MimeType,
		SizeBytes:  f.SizeBytes,
		CreatedAt:  f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  f.UpdatedAt.Format(time.RFC3339),
	}
}
