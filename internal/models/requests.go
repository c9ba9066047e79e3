package models

// Option is the minimal {id, name} projection used to populate dropdown
// select inputs. Link rows alias their title into Name.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ClientRequest struct {
	Name               string  `json:"name" binding:"required,max=200"`
	EngagementType     string  `json:"engagementType" binding:"required,oneof=TIME_BASED PROJECT_BASED"`
	WorkingDaysPerWeek *int    `json:"workingDaysPerWeek" binding:"omitempty,min=1,max=7"`
	WorkingHoursPerDay *int    `json:"workingHoursPerDay" binding:"omitempty,min=1,max=24"`
	Notes              *string `json:"notes" binding:"omitempty,max=1000"`
}

type ProjectRequest struct {
	ClientID    string  `json:"clientId" binding:"required,min=1,max=64"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      string  `json:"status" binding:"required,oneof=ACTIVE PAUSED ARCHIVED"`
}

type CodebaseRequest struct {
	ProjectID   string  `json:"projectId" binding:"required,min=1,max=64"`
	Name        string  `json:"name" binding:"required,max=200"`
	Type        string  `json:"type" binding:"required,oneof=FRONTEND BACKEND MOBILE LIBRARY INFRASTRUCTURE DATA OTHER"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type LinkRequest struct {
	ProjectID  string  `json:"projectId" binding:"required,min=1,max=64"`
	CodebaseID *string `json:"codebaseId" binding:"omitempty,min=1,max=64"`
	Title      string  `json:"title" binding:"required,max=200"`
	URL        string  `json:"url" binding:"required,url,startswith=http"`
	Category   string  `json:"category" binding:"required,oneof=DOCUMENTATION REPOSITORY DESIGN DEPLOYMENT STAGING PRODUCTION OTHER"`
	Notes      *string `json:"notes" binding:"omitempty,max=1000"`
}

// FileUpdateRequest renames or retags an existing file; the blob itself is
// immutable after upload.
type FileUpdateRequest struct {
	Filename   string  `json:"filename" binding:"required,max=255"`
	ClientID   *string `json:"clientId" binding:"omitempty,min=1,max=64"`
	ProjectID  *string `json:"projectId" binding:"omitempty,min=1,max=64"`
	CodebaseID *string `json:"codebaseId" binding:"omitempty,min=1,max=64"`
}
