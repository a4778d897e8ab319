package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamInvite is a pending or accepted invitation to join a team.
// Shareable links carry neither email nor phone.
type TeamInvite struct {
	BaseModel
	TeamID     uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Token      string     `json:"token" gorm:"not null;size:64;uniqueIndex"`
	Email      *string    `json:"email,omitempty" gorm:"size:255"`
	Phone      *string    `json:"phone,omitempty" gorm:"size:30"`
	Role       TeamRole   `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	InvitedBy  uuid.UUID  `json:"invited_by" gorm:"type:uuid;not null"`
	AcceptedBy *uuid.UUID `json:"accepted_by,omitempty" gorm:"type:uuid"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null;index"`
}

// TableName returns the table name for TeamInvite
func (TeamInvite) TableName() string {
	return "team_invites"
}

// IsShareable reports whether the invite is an open link rather than addressed to someone
func (i *TeamInvite) IsShareable() bool {
	return i.Email == nil && i.Phone == nil
}

// IsAccepted reports whether the invite has been used
func (i *TeamInvite) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsExpired reports whether the invite can no longer be accepted at now.
// An invite without an expiry never expires.
func (i *TeamInvite) IsExpired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}
