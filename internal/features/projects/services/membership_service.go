package projects_services

import (
	"fmt"
	"strings"

	audit_logs "taskhive/internal/features/audit_logs"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/util/apperrors"

	"github.com/google/uuid"
)

const (
	inviteCandidateSearchLimit = 5
	minSearchQueryLength       = 3
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	projectService       *ProjectService
}

func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetMembersResponseDTO, error) {
	if _, err := s.projectService.ResolveMembership(projectID, user); err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project members", err)
	}

	membersList := make([]projects_dto.ProjectMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &projects_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

func (s *MembershipService) ChangeMemberRole(
	projectID uuid.UUID,
	membershipID uuid.UUID,
	request *projects_dto.ChangeMemberRoleRequestDTO,
	changedBy *users_models.User,
) error {
	actorMembership, err := s.projectService.ResolveMembership(projectID, changedBy)
	if err != nil {
		return err
	}

	if !actorMembership.Role.AreMembersManageable() {
		return apperrors.Forbidden("insufficient permissions to manage members")
	}

	if !request.Role.IsValid() {
		return apperrors.Validation("invalid project role", nil)
	}

	targetMembership, err := s.membershipRepository.GetMembershipByID(membershipID)
	if err != nil {
		return apperrors.Internal("failed to get membership", err)
	}

	if targetMembership == nil || targetMembership.ProjectID != projectID {
		return apperrors.NotFound("member not found")
	}

	if targetMembership.UserID == changedBy.ID {
		return apperrors.SelfModification("cannot change your own role")
	}

	targetUser, err := s.userService.GetUserByID(targetMembership.UserID)
	if err != nil {
		return apperrors.Internal("failed to get member user", err)
	}

	if err := s.membershipRepository.UpdateMemberRole(membershipID, request.Role); err != nil {
		return apperrors.Internal("failed to update member role", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf(
			"Member role changed: %s from %s to %s",
			targetUser.Email,
			targetMembership.Role,
			request.Role,
		),
		&changedBy.ID,
		&projectID,
	)

	return nil
}

func (s *MembershipService) RemoveMember(
	projectID uuid.UUID,
	membershipID uuid.UUID,
	removedBy *users_models.User,
) error {
	actorMembership, err := s.projectService.ResolveMembership(projectID, removedBy)
	if err != nil {
		return err
	}

	if !actorMembership.Role.AreMembersManageable() {
		return apperrors.Forbidden("insufficient permissions to remove members")
	}

	targetMembership, err := s.membershipRepository.GetMembershipByID(membershipID)
	if err != nil {
		return apperrors.Internal("failed to get membership", err)
	}

	if targetMembership == nil || targetMembership.ProjectID != projectID {
		return apperrors.NotFound("member not found")
	}

	if targetMembership.UserID == removedBy.ID {
		return apperrors.SelfRemoval("cannot remove yourself from the project")
	}

	targetUser, err := s.userService.GetUserByID(targetMembership.UserID)
	if err != nil {
		return apperrors.Internal("failed to get member user", err)
	}

	if err := s.membershipRepository.RemoveMemberByID(membershipID); err != nil {
		return apperrors.Internal("failed to remove member", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member removed from project: %s", targetUser.Email),
		&removedBy.ID,
		&projectID,
	)

	return nil
}

// SearchInviteCandidates finds users by email fragment for the invite
// picker. Short queries return no rows rather than scanning the whole
// users table.
func (s *MembershipService) SearchInviteCandidates(
	projectID uuid.UUID,
	query string,
	user *users_models.User,
) (*projects_dto.GetInviteCandidatesResponseDTO, error) {
	actorMembership, err := s.projectService.ResolveMembership(projectID, user)
	if err != nil {
		return nil, err
	}

	if !actorMembership.Role.AreMembersManageable() {
		return nil, apperrors.Forbidden("insufficient permissions to manage members")
	}

	query = strings.ToLower(strings.TrimSpace(query))

	candidates := make([]projects_dto.InviteCandidateDTO, 0)
	if len(query) < minSearchQueryLength {
		return &projects_dto.GetInviteCandidatesResponseDTO{Candidates: candidates}, nil
	}

	memberIDs, err := s.membershipRepository.GetMemberUserIDs(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project members", err)
	}

	users, err := s.userService.SearchUsersByEmail(query, memberIDs, inviteCandidateSearchLimit)
	if err != nil {
		return nil, apperrors.Internal("failed to search users", err)
	}

	for _, candidate := range users {
		candidates = append(candidates, projects_dto.InviteCandidateDTO{
			ID:    candidate.ID,
			Email: candidate.Email,
			Name:  candidate.Name,
			Image: candidate.Image,
		})
	}

	return &projects_dto.GetInviteCandidatesResponseDTO{Candidates: candidates}, nil
}
