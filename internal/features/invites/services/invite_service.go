package invites_services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	audit_logs "taskhive/internal/features/audit_logs"
	invites_dto "taskhive/internal/features/invites/dto"
	invites_models "taskhive/internal/features/invites/models"
	invites_repositories "taskhive/internal/features/invites/repositories"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	projects_services "taskhive/internal/features/projects/services"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/storage"
	"taskhive/internal/util/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteService struct {
	inviteRepository     *invites_repositories.InviteRepository
	membershipRepository *projects_repositories.MembershipRepository
	projectService       *projects_services.ProjectService
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	logger               *slog.Logger

	// overridable in tests
	now func() time.Time
}

func (s *InviteService) CreateInvite(
	projectID uuid.UUID,
	request *invites_dto.CreateInviteRequestDTO,
	inviter *users_models.User,
) (*invites_dto.InviteResponseDTO, error) {
	membership, err := s.projectService.ResolveMembership(projectID, inviter)
	if err != nil {
		return nil, err
	}

	if !membership.Role.AreMembersManageable() {
		return nil, apperrors.Forbidden("insufficient permissions to invite members")
	}

	if !request.Role.IsValid() {
		return nil, apperrors.Validation("invalid project role", nil)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	targetUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("failed to check existing user", err)
	}

	if targetUser != nil {
		existingMembership, err := s.membershipRepository.GetMembership(projectID, targetUser.ID)
		if err != nil {
			return nil, apperrors.Internal("failed to check project membership", err)
		}

		if existingMembership != nil {
			return nil, apperrors.Conflict("user is already a member of this project")
		}
	}

	now := s.now().UTC()

	invite := &invites_models.ProjectInvite{
		ID:        uuid.New(),
		ProjectID: projectID,
		Email:     email,
		Status:    invites_models.InviteStatusPending,
		Role:      request.Role,
		InviterID: inviter.ID,
		ExpiresAt: now.Add(invites_models.InviteExpiration),
		CreatedAt: now,
	}

	// An expired pending invite for the same pair would trip the
	// uniqueness constraint, so it is revoked in the same transaction.
	err = storage.Transaction(func(tx *gorm.DB) error {
		if err := s.inviteRepository.RevokeExpiredPending(tx, projectID, email, now); err != nil {
			return err
		}

		return s.inviteRepository.CreateInvite(tx, invite)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("an invitation for this email is already pending")
		}

		return nil, apperrors.Internal("failed to create invite", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite created for %s as %s", invite.Email, invite.Role),
		&inviter.ID,
		&projectID,
	)

	return toInviteResponse(invite), nil
}

func (s *InviteService) ListProjectPendingInvites(
	projectID uuid.UUID,
	user *users_models.User,
) (*invites_dto.ListInvitesResponseDTO, error) {
	membership, err := s.projectService.ResolveMembership(projectID, user)
	if err != nil {
		return nil, err
	}

	if !membership.Role.AreMembersManageable() {
		return nil, apperrors.Forbidden("insufficient permissions to view project invites")
	}

	invites, err := s.inviteRepository.ListPendingByProject(projectID, s.now().UTC())
	if err != nil {
		return nil, apperrors.Internal("failed to list project invites", err)
	}

	return &invites_dto.ListInvitesResponseDTO{Invites: invites}, nil
}

func (s *InviteService) ListPendingInvitesForEmail(
	user *users_models.User,
) (*invites_dto.ListInvitesResponseDTO, error) {
	invites, err := s.inviteRepository.ListPendingByEmail(user.Email, s.now().UTC())
	if err != nil {
		return nil, apperrors.Internal("failed to list invites", err)
	}

	return &invites_dto.ListInvitesResponseDTO{Invites: invites}, nil
}

func (s *InviteService) RespondToInvite(
	inviteID uuid.UUID,
	action string,
	user *users_models.User,
) error {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return apperrors.Internal("failed to get invite", err)
	}

	if invite == nil {
		return apperrors.NotFound("invite not found")
	}

	if s.now().UTC().After(invite.ExpiresAt) {
		return apperrors.Expired("invite has expired")
	}

	if !strings.EqualFold(invite.Email, user.Email) {
		return apperrors.Forbidden("this invite was sent to a different email address")
	}

	if invite.Status != invites_models.InviteStatusPending {
		return apperrors.AlreadyProcessed("invite has already been processed")
	}

	switch action {
	case invites_dto.RespondActionAccept:
		return s.acceptInvite(invite, user)
	case invites_dto.RespondActionDecline:
		return s.declineInvite(invite, user)
	default:
		return apperrors.Validation("invalid invite action", nil)
	}
}

func (s *InviteService) acceptInvite(invite *invites_models.ProjectInvite, user *users_models.User) error {
	// The status transition and the membership insert commit together.
	// If the membership row cannot be created, the invite stays pending.
	err := storage.Transaction(func(tx *gorm.DB) error {
		rowsAffected, err := s.inviteRepository.AcceptInvite(tx, invite.ID, user.ID)
		if err != nil {
			return err
		}

		if rowsAffected == 0 {
			return apperrors.AlreadyProcessed("invite has already been processed")
		}

		membership := &projects_models.ProjectMember{
			ProjectID: invite.ProjectID,
			UserID:    user.ID,
			Role:      invite.Role,
		}

		return s.membershipRepository.CreateMembership(tx, membership)
	})
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindAlreadyProcessed) {
			return err
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("user is already a member of this project")
		}

		return apperrors.Internal("failed to accept invite", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite accepted by %s, joined as %s", user.Email, invite.Role),
		&user.ID,
		&invite.ProjectID,
	)

	return nil
}

func (s *InviteService) declineInvite(invite *invites_models.ProjectInvite, user *users_models.User) error {
	var rowsAffected int64

	err := storage.Transaction(func(tx *gorm.DB) error {
		var err error
		rowsAffected, err = s.inviteRepository.DeclineInvite(tx, invite.ID, user.ID)
		return err
	})
	if err != nil {
		return apperrors.Internal("failed to decline invite", err)
	}

	if rowsAffected == 0 {
		return apperrors.AlreadyProcessed("invite has already been processed")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite declined by %s", user.Email),
		&user.ID,
		&invite.ProjectID,
	)

	return nil
}

func (s *InviteService) RevokeInvite(inviteID uuid.UUID, user *users_models.User) error {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return apperrors.Internal("failed to get invite", err)
	}

	if invite == nil {
		return apperrors.NotFound("invite not found")
	}

	membership, err := s.projectService.ResolveMembership(invite.ProjectID, user)
	if err != nil {
		return err
	}

	if !membership.Role.AreMembersManageable() {
		return apperrors.Forbidden("insufficient permissions to revoke invites")
	}

	var rowsAffected int64

	err = storage.Transaction(func(tx *gorm.DB) error {
		var err error
		rowsAffected, err = s.inviteRepository.UpdateStatusIfPending(
			tx,
			invite.ID,
			invites_models.InviteStatusRevoked,
		)
		return err
	})
	if err != nil {
		return apperrors.Internal("failed to revoke invite", err)
	}

	if rowsAffected == 0 {
		return apperrors.AlreadyProcessed("invite has already been processed")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite for %s revoked", invite.Email),
		&user.ID,
		&invite.ProjectID,
	)

	return nil
}

// OnBeforeProjectDeletion removes the project's invites inside the
// deletion transaction.
func (s *InviteService) OnBeforeProjectDeletion(tx *gorm.DB, projectID uuid.UUID) error {
	return s.inviteRepository.DeleteByProject(tx, projectID)
}

func toInviteResponse(invite *invites_models.ProjectInvite) *invites_dto.InviteResponseDTO {
	return &invites_dto.InviteResponseDTO{
		ID:        invite.ID,
		ProjectID: invite.ProjectID,
		Email:     invite.Email,
		Role:      invite.Role,
		Status:    invite.Status,
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}
