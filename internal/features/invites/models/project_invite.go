package invites_models

import (
	"time"

	users_enums "taskhive/internal/features/users/enums"

	"github.com/google/uuid"
)

// InviteStatus is the invite lifecycle state. Pending is the only
// non-terminal status; accepted, rejected and revoked are final.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
	InviteStatusRevoked  InviteStatus = "revoked"
)

func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRejected, InviteStatusRevoked:
		return true
	default:
		return false
	}
}

func (s InviteStatus) IsTerminal() bool {
	return s.IsValid() && s != InviteStatusPending
}

// InviteExpiration is how long a fresh invite stays open.
const InviteExpiration = 30 * 24 * time.Hour

type ProjectInvite struct {
	ID        uuid.UUID               `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID               `json:"projectId" gorm:"column:project_id"`
	Email     string                  `json:"email"     gorm:"column:email"`
	Status    InviteStatus            `json:"status"    gorm:"column:status"`
	Role      users_enums.ProjectRole `json:"role"      gorm:"column:role"`
	InviterID uuid.UUID               `json:"inviterId" gorm:"column:inviter_id"`
	InviteeID *uuid.UUID              `json:"inviteeId" gorm:"column:invitee_id"`
	ExpiresAt time.Time               `json:"expiresAt" gorm:"column:expires_at"`
	CreatedAt time.Time               `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time               `json:"updatedAt" gorm:"column:updated_at"`
}

func (ProjectInvite) TableName() string {
	return "project_invites"
}
