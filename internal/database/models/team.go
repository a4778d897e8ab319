package models

import (
	"github.com/google/uuid"
)

// Team represents an invite-only sports team
type Team struct {
	BaseModel
	Name    string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_teams_owner_name" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_teams_owner_name"`

	// Relationships
	Members  []TeamMember  `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Sessions []GameSession `json:"sessions,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Invites  []TeamInvite  `json:"invites,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
