package models

import (
	"time"

	"github.com/google/uuid"
)

// GameSession is a scheduled game for a team. Sessions are immutable once created.
type GameSession struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Location    *string   `json:"location,omitempty" gorm:"size:200"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	StartsAt    time.Time `json:"starts_at" gorm:"not null;index"`
	EndsAt      time.Time `json:"ends_at" gorm:"not null;index"`
	MaxPlayers  int       `json:"max_players" gorm:"not null;check:chk_game_sessions_max_players,max_players > 0" validate:"required,min=1"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Signups []GameSignup `json:"signups,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GameSession
func (GameSession) TableName() string {
	return "game_sessions"
}
