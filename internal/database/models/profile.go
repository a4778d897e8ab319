package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile holds the display details of a user. The id equals the user id.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  *string   `json:"full_name,omitempty" gorm:"size:200"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:30"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// DisplayName returns the trimmed full name, or an empty string when unset
func (p *Profile) DisplayName() string {
	if p == nil || p.FullName == nil {
		return ""
	}
	return strings.TrimSpace(*p.FullName)
}
