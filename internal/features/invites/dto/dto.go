package invites_dto

import (
	"time"

	invites_models "taskhive/internal/features/invites/models"
	users_enums "taskhive/internal/features/users/enums"

	"github.com/google/uuid"
)

const (
	RespondActionAccept  = "accept"
	RespondActionDecline = "decline"
)

type CreateInviteRequestDTO struct {
	Email string                  `json:"email" binding:"required,email"`
	Role  users_enums.ProjectRole `json:"role"  binding:"required"`
}

type RespondInviteRequestDTO struct {
	Action string `json:"action" binding:"required,oneof=accept decline"`
}

type InviteResponseDTO struct {
	ID        uuid.UUID                   `json:"id"`
	ProjectID uuid.UUID                   `json:"projectId"`
	Email     string                      `json:"email"`
	Role      users_enums.ProjectRole     `json:"role"`
	Status    invites_models.InviteStatus `json:"status"`
	ExpiresAt time.Time                   `json:"expiresAt"`
	CreatedAt time.Time                   `json:"createdAt"`
}

// PendingInviteDTO carries the extra context an invitee needs to decide
// on an invite. Populated by joins in the repository.
type PendingInviteDTO struct {
	ID           uuid.UUID                   `json:"id"           gorm:"column:id"`
	ProjectID    uuid.UUID                   `json:"projectId"    gorm:"column:project_id"`
	ProjectTitle string                      `json:"projectTitle" gorm:"column:project_title"`
	ProjectIcon  *string                     `json:"projectIcon"  gorm:"column:project_icon"`
	Email        string                      `json:"email"        gorm:"column:email"`
	Role         users_enums.ProjectRole     `json:"role"         gorm:"column:role"`
	Status       invites_models.InviteStatus `json:"status"       gorm:"column:status"`
	InviterName  string                      `json:"inviterName"  gorm:"column:inviter_name"`
	InviterEmail string                      `json:"inviterEmail" gorm:"column:inviter_email"`
	ExpiresAt    time.Time                   `json:"expiresAt"    gorm:"column:expires_at"`
	CreatedAt    time.Time                   `json:"createdAt"    gorm:"column:created_at"`
}

type ListInvitesResponseDTO struct {
	Invites []*PendingInviteDTO `json:"invites"`
}
