package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/config"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/logger"
	"gotnext-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const week = 7 * 24 * time.Hour

// SessionService schedules game sessions and builds the upcoming roster view
type SessionService struct {
	sessions       repository.SessionRepositoryInterface
	signups        repository.SignupRepositoryInterface
	memberships    repository.MembershipRepositoryInterface
	teams          repository.TeamRepositoryInterface
	profiles       repository.ProfileRepositoryInterface
	invites        repository.InviteRepositoryInterface
	validator      *validator.Validate
	maxRepeatCount int
	now            func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(
	sessions repository.SessionRepositoryInterface,
	signups repository.SignupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	invites repository.InviteRepositoryInterface,
	validator *validator.Validate,
	maxRepeatCount int,
) *SessionService {
	if maxRepeatCount < 1 || maxRepeatCount > config.MaxWeeklyOccurrences {
		maxRepeatCount = config.MaxWeeklyOccurrences
	}
	return &SessionService{
		sessions:       sessions,
		signups:        signups,
		memberships:    memberships,
		teams:          teams,
		profiles:       profiles,
		invites:        invites,
		validator:      validator,
		maxRepeatCount: maxRepeatCount,
		now:            time.Now,
	}
}

// WithClock replaces the time source, for tests
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// ScheduleSessionRequest represents the request to schedule one game or a weekly series
type ScheduleSessionRequest struct {
	Title       string  `json:"title" validate:"max=200" example:"Thursday pickup"`
	Location    string  `json:"location,omitempty" validate:"max=200" example:"Riverside Courts"`
	Notes       string  `json:"notes,omitempty" validate:"max=2000"`
	StartsAt    string  `json:"starts_at" example:"2024-06-03T18:00:00Z"`
	EndsAt      string  `json:"ends_at" example:"2024-06-03T20:00:00Z"`
	MaxPlayers  int     `json:"max_players" example:"10"`
	RepeatMode  string  `json:"repeat_mode,omitempty" example:"weekly"`
	RepeatCount float64 `json:"repeat_count,omitempty" example:"3"`
}

// Schedule validates a request and stores the resulting sessions as one batch
func (s *SessionService) Schedule(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *ScheduleSessionRequest) (*ScheduleResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	plan, err := s.planSeries(req)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, s.memberships, teamID, userID, apperrors.ErrNotSessionManager); err != nil {
		return nil, err
	}

	sessions := plan.materialize(teamID, userID)
	if err := s.sessions.CreateBatch(ctx, sessions); err != nil {
		return nil, fmt.Errorf("failed to create game sessions: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID.String(),
		"count":   len(sessions),
	}).Info("scheduled game sessions")

	return &ScheduleResult{
		Success:  scheduledMessage(len(sessions)),
		Count:    len(sessions),
		Sessions: sessions,
	}, nil
}

// seriesPlan is a validated schedule request
type seriesPlan struct {
	title       string
	location    *string
	notes       *string
	start       time.Time
	duration    time.Duration
	maxPlayers  int
	occurrences int
	interval    time.Duration
}

func (s *SessionService) planSeries(req *ScheduleSessionRequest) (*seriesPlan, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ErrSessionTitleRequired
	}
	if strings.TrimSpace(req.StartsAt) == "" || strings.TrimSpace(req.EndsAt) == "" {
		return nil, apperrors.ErrSessionTimesRequired
	}

	start, startErr := parseSessionTime(req.StartsAt)
	end, endErr := parseSessionTime(req.EndsAt)
	if startErr != nil || endErr != nil {
		return nil, apperrors.ErrInvalidSessionTimes
	}
	if !end.After(start) {
		return nil, apperrors.ErrSessionEndBeforeStart
	}
	if req.MaxPlayers < 1 {
		return nil, apperrors.ErrInvalidMaxPlayers
	}

	mode, err := ParseRepeatMode(req.RepeatMode)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	plan := &seriesPlan{
		title:       title,
		location:    optionalString(req.Location),
		notes:       optionalString(req.Notes),
		start:       start,
		duration:    end.Sub(start),
		maxPlayers:  req.MaxPlayers,
		occurrences: ClampOccurrences(mode, req.RepeatCount, s.maxRepeatCount),
	}
	if mode == models.RepeatModeWeekly {
		plan.interval = week
	}
	return plan, nil
}

func (p *seriesPlan) materialize(teamID, createdBy uuid.UUID) []models.GameSession {
	sessions := make([]models.GameSession, 0, p.occurrences)
	for i := 0; i < p.occurrences; i++ {
		start := p.start.Add(time.Duration(i) * p.interval)
		sessions = append(sessions, models.GameSession{
			TeamID:      teamID,
			Title:       p.title,
			Location:    p.location,
			Description: p.notes,
			StartsAt:    start,
			EndsAt:      start.Add(p.duration),
			MaxPlayers:  p.maxPlayers,
			CreatedBy:   createdBy,
		})
	}
	return sessions
}
