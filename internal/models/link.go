package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link categories.
const (
	LinkCategoryDocumentation = "DOCUMENTATION"
	LinkCategoryRepository    = "REPOSITORY"
	LinkCategoryDesign        = "DESIGN"
	LinkCategoryDeployment    = "DEPLOYMENT"
	LinkCategoryStaging       = "STAGING"
	LinkCategoryProduction    = "PRODUCTION"
	LinkCategoryOther         = "OTHER"
)

// Link carries a denormalized UserID so list queries filter on a single
// column instead of joining through Project and Client. The field is set
// once at creation from the authenticated session and never updated.
type Link struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"userId" gorm:"index;not null;type:varchar(36)"`
	ProjectID  string    `json:"projectId" gorm:"index;not null;type:varchar(36)"`
	CodebaseID *string   `json:"codebaseId" gorm:"index;type:varchar(36)"`
	Title      string    `json:"title" gorm:"not null"`
	URL        string    `json:"url" gorm:"not null"`
	Category   string    `json:"category" gorm:"not null;type:varchar(20)"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Project  Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Codebase *Codebase `json:"-" gorm:"foreignKey:CodebaseID;constraint:OnDelete:CASCADE"`
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type LinkDTO struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	CodebaseID   *string `json:"codebaseId"`
	CodebaseName *string `json:"codebaseName"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Category     string  `json:"category"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func (l *Link) ToDTO() LinkDTO {
	dto := LinkDTO{
		ID:          l.ID,
		ProjectID:   l.ProjectID,
		ProjectName: l.Project.Name,
		CodebaseID:  l.CodebaseID,
		Title:       l.Title,
		URL:         l.URL,
		Category:    l.Category,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
	if l.Codebase != nil {
		dto.CodebaseName = &l.Codebase.Name
	}
	return dto
}
