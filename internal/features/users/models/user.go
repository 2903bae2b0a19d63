package users_models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTimezone = "America/New_York"

type User struct {
	ID                   uuid.UUID `json:"id"        gorm:"column:id"`
	Email                string    `json:"email"     gorm:"column:email;uniqueIndex"`
	Name                 string    `json:"name"      gorm:"column:name"`
	Image                *string   `json:"image"     gorm:"column:image"`
	Timezone             string    `json:"timezone"  gorm:"column:timezone"`
	HashedPassword       string    `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"         gorm:"column:password_creation_time"`
	CreatedAt            time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt            time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
