package projects_services

import (
	"errors"
	"fmt"
	"time"

	audit_logs "taskhive/internal/features/audit_logs"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_interfaces "taskhive/internal/features/projects/interfaces"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"
	"taskhive/internal/storage"
	"taskhive/internal/util/apperrors"
	cache_utils "taskhive/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository        *projects_repositories.ProjectRepository
	membershipRepository     *projects_repositories.MembershipRepository
	auditLogService          *audit_logs.AuditLogService
	projectDeletionListeners []projects_interfaces.ProjectDeletionListener

	// nil when caching is disabled
	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) AddProjectDeletionListener(listener projects_interfaces.ProjectDeletionListener) {
	s.projectDeletionListeners = append(s.projectDeletionListeners, listener)
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:          uuid.New(),
		Title:       request.Title,
		Description: normalizeOptional(request.Description),
		Icon:        normalizeOptional(request.Icon),
		CreatedByID: creator.ID,
		CreatedAt:   time.Now().UTC(),
	}

	// The project and its admin membership either both exist or neither
	// does. A project without an admin would be unmanageable.
	err := storage.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.CreateProject(tx, project); err != nil {
			return err
		}

		membership := &projects_models.ProjectMember{
			UserID:    creator.ID,
			ProjectID: project.ID,
			Role:      users_enums.ProjectRoleAdmin,
		}

		return s.membershipRepository.CreateMembership(tx, membership)
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create project", err)
	}

	if s.projectCacheUtil != nil {
		s.projectCacheUtil.Set(project.ID.String(), project)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Title),
		&creator.ID,
		&project.ID,
	)

	adminRole := users_enums.ProjectRoleAdmin
	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Icon:        project.Icon,
		CreatedAt:   project.CreatedAt,
		UserRole:    &adminRole,
		MemberCount: 1,
	}, nil
}

// ResolveMembership loads the caller's membership row. A missing project
// and a project the caller does not belong to are indistinguishable on
// purpose, so non-members cannot probe which project IDs exist.
func (s *ProjectService) ResolveMembership(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.ProjectMember, error) {
	membership, err := s.membershipRepository.GetMembership(projectID, user.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to check project membership", err)
	}

	if membership == nil {
		return nil, apperrors.NotFound("project not found")
	}

	return membership, nil
}

func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	membership, err := s.ResolveMembership(projectID, user)
	if err != nil {
		return nil, err
	}

	project, err := s.getProjectByIDCached(projectID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := s.membershipRepository.GetMemberUserIDs(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to count project members", err)
	}

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Icon:        project.Icon,
		CreatedAt:   project.CreatedAt,
		UserRole:    &membership.Role,
		MemberCount: int64(len(memberIDs)),
	}, nil
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(user.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get user projects", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	membership, err := s.ResolveMembership(projectID, user)
	if err != nil {
		return nil, err
	}

	if !membership.Role.IsProjectEditable() {
		return nil, apperrors.Forbidden("insufficient permissions to update project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project", err)
	}

	project.Title = request.Title
	project.Description = normalizeOptional(request.Description)
	project.Icon = normalizeOptional(request.Icon)

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, apperrors.Internal("failed to update project", err)
	}

	if s.projectCacheUtil != nil {
		s.projectCacheUtil.Invalidate(projectID.String())
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Title),
		&user.ID,
		&projectID,
	)

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Icon:        project.Icon,
		CreatedAt:   project.CreatedAt,
		UserRole:    &membership.Role,
	}, nil
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	membership, err := s.ResolveMembership(projectID, user)
	if err != nil {
		return err
	}

	if !membership.Role.IsProjectDeletable() {
		return apperrors.Forbidden("only project admins can delete a project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return apperrors.Internal("failed to get project", err)
	}

	err = storage.Transaction(func(tx *gorm.DB) error {
		for _, listener := range s.projectDeletionListeners {
			if err := listener.OnBeforeProjectDeletion(tx, projectID); err != nil {
				return err
			}
		}

		if err := s.membershipRepository.DeleteProjectMembers(tx, projectID); err != nil {
			return err
		}

		return s.projectRepository.DeleteProject(tx, projectID)
	})
	if err != nil {
		return apperrors.Internal("failed to delete project", err)
	}

	if s.projectCacheUtil != nil {
		s.projectCacheUtil.Invalidate(projectID.String())
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Title),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	if _, err := s.ResolveMembership(projectID, user); err != nil {
		return nil, err
	}

	return s.auditLogService.GetProjectAuditLogs(projectID, request)
}

func (s *ProjectService) getProjectByIDCached(projectID uuid.UUID) (*projects_models.Project, error) {
	if s.projectCacheUtil == nil {
		project, err := s.projectRepository.GetProjectByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("project not found")
			}

			return nil, apperrors.Internal("failed to get project", err)
		}

		return project, nil
	}

	projectIDStr := projectID.String()

	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, apperrors.NotFound("project not found")
		}

		return cachedProject, nil
	}

	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal("failed to get project", err)
		}

		// Cache the invalid project to prevent future DB hits
		invalidCachedProject := &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		}
		s.projectCacheUtil.Set(projectIDStr, invalidCachedProject)
		return nil, apperrors.NotFound("project not found")
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}

func normalizeOptional(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}
