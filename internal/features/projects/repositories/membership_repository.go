package projects_repositories

import (
	"errors"
	"time"

	projects_dto "taskhive/internal/features/projects/dto"
	projects_models "taskhive/internal/features/projects/models"
	users_enums "taskhive/internal/features/users/enums"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(tx *gorm.DB, membership *projects_models.ProjectMember) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}
	membership.UpdatedAt = membership.CreatedAt

	return tx.Create(membership).Error
}

// GetMembership returns nil without error when the user is not a member.
func (r *MembershipRepository) GetMembership(
	projectID, userID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	var membership projects_models.ProjectMember

	err := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetMembershipByID(
	membershipID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	var membership projects_models.ProjectMember

	err := storage.GetDb().
		Where("id = ?", membershipID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	var members []*projects_dto.ProjectMemberResponseDTO

	err := storage.GetDb().
		Table("project_members pm").
		Select("pm.id, pm.user_id, u.email, u.name, u.image, pm.role, pm.created_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetMemberUserIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	err := storage.GetDb().
		Model(&projects_models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &userIDs).Error

	return userIDs, err
}

func (r *MembershipRepository) UpdateMemberRole(membershipID uuid.UUID, role users_enums.ProjectRole) error {
	return storage.GetDb().
		Model(&projects_models.ProjectMember{}).
		Where("id = ?", membershipID).
		Updates(map[string]any{
			"role":       role,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *MembershipRepository) RemoveMemberByID(membershipID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", membershipID).
		Delete(&projects_models.ProjectMember{}).Error
}

func (r *MembershipRepository) DeleteProjectMembers(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.
		Where("project_id = ?", projectID).
		Delete(&projects_models.ProjectMember{}).Error
}

func (r *MembershipRepository) GetProjectsWithRolesByUserID(
	userID uuid.UUID,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select(`p.id, p.title, p.description, p.icon, p.created_at, pm.role AS user_role,
			(SELECT COUNT(*) FROM project_members pc WHERE pc.project_id = p.id) AS member_count`).
		Joins("JOIN project_members pm ON p.id = pm.project_id").
		Where("pm.user_id = ?", userID).
		Order("p.updated_at DESC").
		Scan(&results).Error

	return results, err
}
