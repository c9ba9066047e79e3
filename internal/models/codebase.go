package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Codebase types.
const (
	CodebaseTypeFrontend       = "FRONTEND"
	CodebaseTypeBackend        = "BACKEND"
	CodebaseTypeMobile         = "MOBILE"
	CodebaseTypeLibrary        = "LIBRARY"
	CodebaseTypeInfrastructure = "INFRASTRUCTURE"
	CodebaseTypeData           = "DATA"
	CodebaseTypeOther          = "OTHER"
)

type Codebase struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID   string    `json:"projectId" gorm:"index;not null;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null;type:varchar(20)"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (cb *Codebase) BeforeCreate(tx *gorm.DB) error {
	if cb.ID == "" {
		cb.ID = uuid.NewString()
	}
	return nil
}

type CodebaseDTO struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	ClientName  string  `json:"clientName"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (cb *Codebase) ToDTO() CodebaseDTO {
	return CodebaseDTO{
		ID:          cb.ID,
		ProjectID:   cb.ProjectID,
		ProjectName: cb.Project.Name,
		ClientName:  cb.Project.Client.Name,
		Name:        cb.Name,
		Type:        cb.Type,
		Description: cb.Description,
		CreatedAt:   cb.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   cb.UpdatedAt.Format(time.RFC3339),
	}
}
