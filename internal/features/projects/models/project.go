package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Title       string    `json:"title"       gorm:"column:title"`
	Description *string   `json:"description" gorm:"column:description"`
	Icon        *string   `json:"icon"        gorm:"column:icon"`
	CreatedByID uuid.UUID `json:"createdById" gorm:"column:created_by_id"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at"`

	// Used for caching non-existent projects
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
