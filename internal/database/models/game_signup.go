package models

import (
	"time"

	"github.com/google/uuid"
)

// GameSignup is a player's place on a game roster. The serial id breaks
// created_at ties so waitlist order is total.
type GameSignup struct {
	ID         uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID  uuid.UUID    `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:idx_game_signups_session_user;index:idx_game_signups_session_status"`
	UserID     uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_game_signups_session_user"`
	Status     SignupStatus `json:"status" gorm:"type:varchar(20);not null;index:idx_game_signups_session_status" validate:"required"`
	CreatedAt  time.Time    `json:"created_at" gorm:"not null"`
	PromotedAt *time.Time   `json:"promoted_at,omitempty"`
}

// TableName returns the table name for GameSignup
func (GameSignup) TableName() string {
	return "game_signups"
}
