package service

import (
	"fmt"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
)

// defaultPlayerName stands in for players without a profile name
const defaultPlayerName = "This player"

// RosterMeta describes who a roster change affected so the caller can
// compose a message. It is advisory and never needed for a later operation.
type RosterMeta struct {
	TargetUserID   uuid.UUID            `json:"target_user_id"`
	TargetName     string               `json:"target_name,omitempty"`
	PreviousStatus *models.SignupStatus `json:"previous_status,omitempty"`
	TargetStatus   models.SignupStatus  `json:"target_status"`
	PromotedUserID *uuid.UUID           `json:"promoted_user_id,omitempty"`
	PromotedName   *string              `json:"promoted_name,omitempty"`
}

// ActionResult is the outcome of a completed action. Failures are returned
// as errors instead.
type ActionResult struct {
	Success string      `json:"success"`
	Meta    *RosterMeta `json:"meta,omitempty"`
}

// NewSuccessResult creates a successful result
func NewSuccessResult(message string, meta *RosterMeta) *ActionResult {
	return &ActionResult{Success: message, Meta: meta}
}

// ScheduleResult is the outcome of scheduling one or a series of sessions
type ScheduleResult struct {
	Success  string               `json:"success"`
	Count    int                  `json:"count"`
	Sessions []models.GameSession `json:"sessions"`
}

func scheduledMessage(count int) string {
	if count > 1 {
		return fmt.Sprintf("%d games scheduled.", count)
	}
	return "Game scheduled."
}

func statusPtr(status models.SignupStatus) *models.SignupStatus {
	return &status
}
