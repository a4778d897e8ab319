package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember links a user to a team with a role
type TeamMember struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;index"`
	Role      TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'player'" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
