package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engagement types for a client contract.
const (
	EngagementTimeBased    = "TIME_BASED"
	EngagementProjectBased = "PROJECT_BASED"
)

type Client struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID             string    `json:"userId" gorm:"index;not null;type:varchar(36)"`
	Name               string    `json:"name" gorm:"not null"`
	EngagementType     string    `json:"engagementType" gorm:"not null;type:varchar(20)"`
	WorkingDaysPerWeek *int      `json:"workingDaysPerWeek"`
	WorkingHoursPerDay *int      `json:"workingHoursPerDay"`
	Notes              *string   `json:"notes" gorm:"type:varchar(1000)"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ClientDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	EngagementType     string  `json:"engagementType"`
	WorkingDaysPerWeek *int    `json:"workingDaysPerWeek"`
	WorkingHoursPerDay *int    `json:"workingHoursPerDay"`
	Notes              *string `json:"notes"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

func (c *Client) ToDTO() ClientDTO {
	return ClientDTO{
		ID:                 c.ID,
		Name:               c.Name,
		EngagementType:     c.EngagementType,
		WorkingDaysPerWeek: c.WorkingDaysPerWeek,
		WorkingHoursPerDay: c.WorkingHoursPerDay,
		Notes:              c.Notes,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
}
