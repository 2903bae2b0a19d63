package projects_interfaces

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectDeletionListener runs inside the project deletion transaction so
// dependent rows disappear atomically with the project itself.
type ProjectDeletionListener interface {
	OnBeforeProjectDeletion(tx *gorm.DB, projectID uuid.UUID) error
}
