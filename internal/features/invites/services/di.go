package invites_services

import (
	"sync"
	"time"

	audit_logs "taskhive/internal/features/audit_logs"
	invites_repositories "taskhive/internal/features/invites/repositories"
	projects_repositories "taskhive/internal/features/projects/repositories"
	projects_services "taskhive/internal/features/projects/services"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/util/logger"
)

var inviteRepository = &invites_repositories.InviteRepository{}

var inviteService = &InviteService{
	inviteRepository:     inviteRepository,
	membershipRepository: &projects_repositories.MembershipRepository{},
	projectService:       projects_services.GetProjectService(),
	userService:          users_services.GetUserService(),
	auditLogService:      audit_logs.GetAuditLogService(),
	logger:               logger.GetLogger(),
	now:                  time.Now,
}

var inviteCleanupBackgroundService = &InviteCleanupBackgroundService{
	inviteRepository: inviteRepository,
	logger:           logger.GetLogger(),
	now:              time.Now,
}

func GetInviteService() *InviteService {
	return inviteService
}

func GetInviteCleanupBackgroundService() *InviteCleanupBackgroundService {
	return inviteCleanupBackgroundService
}

var setupOnce sync.Once

func SetupDependencies() {
	setupOnce.Do(func() {
		projects_services.GetProjectService().AddProjectDeletionListener(inviteService)
	})
}
