package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedView is a named, bookmarked filter state of one list screen.
type SavedView struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID   string         `json:"admin_id" gorm:"not null;index"`
	Screen    string         `json:"screen" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Filters   datatypes.JSON `json:"filters" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (SavedView) TableName() string { return "saved_filter_views" }

type CreateSavedViewRequest struct {
	Screen  string         `json:"screen" binding:"required" example:"orders"`
	Name    string         `json:"name" binding:"required,max=80" example:"Pending this week"`
	Filters map[string]any `json:"filters"`
}

// SavedViewResponse adds the screen URL the view opens.
type SavedViewResponse struct {
	SavedView
	Href string `json:"href"`
}
