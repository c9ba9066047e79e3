package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project lifecycle states.
const (
	ProjectStatusActive   = "ACTIVE"
	ProjectStatusPaused   = "PAUSED"
	ProjectStatusArchived = "ARCHIVED"
)

type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ClientID    string    `json:"clientId" gorm:"index;not null;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	Status      string    `json:"status" gorm:"not null;default:ACTIVE;type:varchar(20)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Client Client `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProjectDTO struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToDTO flattens the preloaded parent client name into the response shape.
func (p *Project) ToDTO() ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientName:  p.Client.Name,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
