package projects_services

import (
	"taskhive/internal/cache"
	"taskhive/internal/config"
	audit_logs "taskhive/internal/features/audit_logs"
	projects_interfaces "taskhive/internal/features/projects/interfaces"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_services "taskhive/internal/features/users/services"
	cache_utils "taskhive/internal/util/cache"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository:        projectRepository,
	membershipRepository:     membershipRepository,
	auditLogService:          audit_logs.GetAuditLogService(),
	projectDeletionListeners: []projects_interfaces.ProjectDeletionListener{
		audit_logs.GetAuditLogService(),
	},
	projectCacheUtil:         newProjectCacheUtil(),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	userService:          users_services.GetUserService(),
	auditLogService:      audit_logs.GetAuditLogService(),
	projectService:       projectService,
}

func newProjectCacheUtil() *cache_utils.CacheUtil[projects_models.Project] {
	if !config.GetEnv().IsCacheEnabled() {
		return nil
	}

	return cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "th_project:")
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
