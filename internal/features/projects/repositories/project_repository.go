package projects_repositories

import (
	"time"

	projects_models "taskhive/internal/features/projects/models"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

// CreateProject inserts the project within tx so it can participate in
// the same transaction as the creator's membership.
func (r *ProjectRepository) CreateProject(tx *gorm.DB, project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	project.UpdatedAt = project.CreatedAt

	return tx.Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	project.UpdatedAt = time.Now().UTC()

	return storage.GetDb().Save(project).Error
}

func (r *ProjectRepository) DeleteProject(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Delete(&projects_models.Project{}, projectID).Error
}
