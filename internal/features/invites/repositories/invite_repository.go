package invites_repositories

import (
	"time"

	invites_dto "taskhive/internal/features/invites/dto"
	invites_models "taskhive/internal/features/invites/models"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteRepository struct{}

func (r *InviteRepository) CreateInvite(tx *gorm.DB, invite *invites_models.ProjectInvite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}

	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now().UTC()
	}
	invite.UpdatedAt = invite.CreatedAt

	return tx.Create(invite).Error
}

func (r *InviteRepository) GetInviteByID(inviteID uuid.UUID) (*invites_models.ProjectInvite, error) {
	var invite invites_models.ProjectInvite

	err := storage.GetDb().Where("id = ?", inviteID).First(&invite).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}

// ListPendingByEmail returns open invites addressed to the email,
// skipping rows that have expired but not yet been swept.
func (r *InviteRepository) ListPendingByEmail(
	email string,
	now time.Time,
) ([]*invites_dto.PendingInviteDTO, error) {
	invites := make([]*invites_dto.PendingInviteDTO, 0)

	err := storage.GetDb().
		Table("project_invites pi").
		Select(`pi.id, pi.project_id, p.title AS project_title, p.icon AS project_icon,
			pi.email, pi.role, pi.status, u.name AS inviter_name, u.email AS inviter_email,
			pi.expires_at, pi.created_at`).
		Joins("JOIN projects p ON pi.project_id = p.id").
		Joins("JOIN users u ON pi.inviter_id = u.id").
		Where("LOWER(pi.email) = LOWER(?)", email).
		Where("pi.status = ?", invites_models.InviteStatusPending).
		Where("pi.expires_at >= ?", now).
		Order("pi.created_at DESC").
		Scan(&invites).Error

	return invites, err
}

func (r *InviteRepository) ListPendingByProject(
	projectID uuid.UUID,
	now time.Time,
) ([]*invites_dto.PendingInviteDTO, error) {
	invites := make([]*invites_dto.PendingInviteDTO, 0)

	err := storage.GetDb().
		Table("project_invites pi").
		Select(`pi.id, pi.project_id, p.title AS project_title, p.icon AS project_icon,
			pi.email, pi.role, pi.status, u.name AS inviter_name, u.email AS inviter_email,
			pi.expires_at, pi.created_at`).
		Joins("JOIN projects p ON pi.project_id = p.id").
		Joins("JOIN users u ON pi.inviter_id = u.id").
		Where("pi.project_id = ?", projectID).
		Where("pi.status = ?", invites_models.InviteStatusPending).
		Where("pi.expires_at >= ?", now).
		Order("pi.created_at DESC").
		Scan(&invites).Error

	return invites, err
}

// UpdateStatusIfPending transitions the invite out of pending. Zero
// affected rows means another request resolved the invite first.
func (r *InviteRepository) UpdateStatusIfPending(
	tx *gorm.DB,
	inviteID uuid.UUID,
	status invites_models.InviteStatus,
) (int64, error) {
	result := tx.
		Model(&invites_models.ProjectInvite{}).
		Where("id = ? AND status = ?", inviteID, invites_models.InviteStatusPending).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}

// AcceptInvite marks the invite accepted and records who accepted it.
func (r *InviteRepository) AcceptInvite(
	tx *gorm.DB,
	inviteID uuid.UUID,
	inviteeID uuid.UUID,
) (int64, error) {
	result := tx.
		Model(&invites_models.ProjectInvite{}).
		Where("id = ? AND status = ?", inviteID, invites_models.InviteStatusPending).
		Updates(map[string]any{
			"status":     invites_models.InviteStatusAccepted,
			"invitee_id": inviteeID,
			"updated_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}

// DeclineInvite marks the invite rejected and records who declined it.
func (r *InviteRepository) DeclineInvite(
	tx *gorm.DB,
	inviteID uuid.UUID,
	inviteeID uuid.UUID,
) (int64, error) {
	result := tx.
		Model(&invites_models.ProjectInvite{}).
		Where("id = ? AND status = ?", inviteID, invites_models.InviteStatusPending).
		Updates(map[string]any{
			"status":     invites_models.InviteStatusRejected,
			"invitee_id": inviteeID,
			"updated_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}

// RevokeExpiredPending clears stale pending invites for the pair so the
// partial unique index does not reject a fresh invite.
func (r *InviteRepository) RevokeExpiredPending(
	tx *gorm.DB,
	projectID uuid.UUID,
	email string,
	now time.Time,
) error {
	return tx.
		Model(&invites_models.ProjectInvite{}).
		Where("project_id = ? AND LOWER(email) = LOWER(?)", projectID, email).
		Where("status = ? AND expires_at < ?", invites_models.InviteStatusPending, now).
		Updates(map[string]any{
			"status":     invites_models.InviteStatusRevoked,
			"updated_at": now,
		}).Error
}

func (r *InviteRepository) SweepExpired(now time.Time) (int64, error) {
	result := storage.GetDb().
		Model(&invites_models.ProjectInvite{}).
		Where("status = ? AND expires_at < ?", invites_models.InviteStatusPending, now).
		Updates(map[string]any{
			"status":     invites_models.InviteStatusRevoked,
			"updated_at": now,
		})

	return result.RowsAffected, result.Error
}

func (r *InviteRepository) DeleteByProject(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.
		Where("project_id = ?", projectID).
		Delete(&invites_models.ProjectInvite{}).Error
}
