package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// datetimeLocalLayout is what browser datetime-local inputs submit; it is read as UTC
const datetimeLocalLayout = "2006-01-02T15:04"

func requireCaller(identity auth.Identity) (uuid.UUID, error) {
	userID, ok := identity.CurrentUser()
	if !ok {
		return uuid.Nil, apperrors.ErrNotAuthenticated
	}
	return userID, nil
}

// requireManager checks that userID is an owner or admin of the team and
// returns denied otherwise
func requireManager(ctx context.Context, memberships repository.MembershipRepositoryInterface, teamID, userID uuid.UUID, denied error) (*models.TeamMember, error) {
	member, err := memberships.GetMembership(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, denied
		}
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}
	if !member.Role.CanManage() {
		return nil, denied
	}
	return member, nil
}

// ParseSignupStatus parses a requested roster status. An empty value yields fallback.
func ParseSignupStatus(value string, fallback models.SignupStatus) (models.SignupStatus, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		value = string(fallback)
	}
	status := models.SignupStatus(value)
	if !status.IsValid() {
		return "", apperrors.ErrInvalidSignupStatus
	}
	return status, nil
}

// ParseTeamRole parses a team role selection
func ParseTeamRole(value string) (models.TeamRole, error) {
	role := models.TeamRole(strings.ToLower(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", apperrors.ErrInvalidRole
	}
	return role, nil
}

// ParseRepeatMode parses a repeat mode. An empty value means no repetition.
func ParseRepeatMode(value string) (models.RepeatMode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return models.RepeatModeNone, nil
	}
	mode := models.RepeatMode(value)
	if !mode.IsValid() {
		return "", apperrors.ErrInvalidRepeatMode
	}
	return mode, nil
}

// parseSessionTime accepts RFC 3339 timestamps and datetime-local values
func parseSessionTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(datetimeLocalLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ClampOccurrences turns a requested repeat count into the number of sessions
// to create. Only weekly series repeat; counts that are not finite or below
// one become one, others are rounded and capped at limit.
func ClampOccurrences(mode models.RepeatMode, requested float64, limit int) int {
	if mode != models.RepeatModeWeekly {
		return 1
	}
	if math.IsNaN(requested) || math.IsInf(requested, 0) || requested < 1 {
		return 1
	}
	if limit < 1 {
		return 1
	}
	// compare as float so counts beyond the int range still hit the cap
	rounded := math.Round(requested)
	if rounded >= float64(limit) {
		return limit
	}
	return int(rounded)
}

// toValidationError converts validator failures into the first field error
func toValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return fmt.Errorf("validation failed: %w", err)
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
