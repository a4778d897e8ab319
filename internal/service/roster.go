package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/logger"
	"gotnext-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService applies roster transitions for game sessions: players join
// and leave, admins move, add and remove players, and a vacated active slot
// promotes the oldest reserve.
type RosterService struct {
	sessions    repository.SessionRepositoryInterface
	signups     repository.SignupRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	profiles    repository.ProfileRepositoryInterface
	now         func() time.Time
}

// NewRosterService creates a new roster service
func NewRosterService(
	sessions repository.SessionRepositoryInterface,
	signups repository.SignupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
) *RosterService {
	return &RosterService{
		sessions:    sessions,
		signups:     signups,
		memberships: memberships,
		profiles:    profiles,
		now:         time.Now,
	}
}

// WithClock replaces the time source, for tests
func (s *RosterService) WithClock(now func() time.Time) *RosterService {
	s.now = now
	return s
}

// Join signs the caller up for a session. A full active roster puts the
// caller on the standby list instead of failing, and joining twice is a no-op.
func (s *RosterService) Join(ctx context.Context, identity auth.Identity, sessionID uuid.UUID, requested models.SignupStatus) (*ActionResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}
	if requested == "" {
		requested = models.SignupStatusActive
	}
	if !requested.IsValid() {
		return nil, apperrors.ErrInvalidSignupStatus
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.signups.Get(ctx, sessionID, userID)
	if err == nil {
		return joinResult(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load signup: %w", err)
	}

	if _, err := s.memberships.GetMembership(ctx, session.TeamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}

	now := s.now()
	signup := &models.GameSignup{
		SessionID: sessionID,
		UserID:    userID,
		Status:    requested,
		CreatedAt: now,
	}
	if requested == models.SignupStatusActive {
		signup.PromotedAt = &now
	}

	if err := s.signups.InsertOrWaitlist(ctx, signup, session.MaxPlayers); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// a concurrent join for the same user won
			existing, getErr := s.signups.Get(ctx, sessionID, userID)
			if getErr != nil {
				return nil, fmt.Errorf("failed to load signup: %w", getErr)
			}
			return joinResult(existing), nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrSessionNotFound
		default:
			return nil, fmt.Errorf("failed to save signup: %w", err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"session_id": sessionID.String(),
		"status":     string(signup.Status),
	}).Info("player joined game")

	return joinResult(signup), nil
}

func joinResult(signup *models.GameSignup) *ActionResult {
	meta := &RosterMeta{TargetUserID: signup.UserID, TargetStatus: signup.Status}
	if signup.Status == models.SignupStatusActive {
		return NewSuccessResult("Saved your spot for this game.", meta)
	}
	return NewSuccessResult("Added you to the standby list.", meta)
}

// Leave removes the caller's own signup. Leaving a session the caller is not
// on succeeds without changes.
func (s *RosterService) Leave(ctx context.Context, identity auth.Identity, sessionID uuid.UUID) (*ActionResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removed, err := s.signups.Delete(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewSuccessResult("You have left this game.", nil), nil
		}
		return nil, fmt.Errorf("failed to remove signup: %w", err)
	}

	meta := &RosterMeta{
		TargetUserID:   userID,
		PreviousStatus: statusPtr(removed.Status),
		TargetStatus:   models.SignupStatusNone,
	}

	var promoted *promotion
	if removed.Status == models.SignupStatusActive {
		promoted = s.promoteNext(ctx, session, &userID)
	}

	return NewSuccessResult(withPromotion("You have left this game.", promoted, meta), meta), nil
}

// AdminSetStatus moves a signed-up player between the active roster and the
// standby list. Moving to active fails when the roster is full; moving to
// reserve promotes the next waiting player.
func (s *RosterService) AdminSetStatus(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID, target models.SignupStatus) (*ActionResult, error) {
	actorID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidSignupStatus
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := requireManager(ctx, s.memberships, session.TeamID, actorID, apperrors.ErrNotRosterManager); err != nil {
		return nil, err
	}

	signup, err := s.signups.Get(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSignupNotFound
		}
		return nil, fmt.Errorf("failed to load signup: %w", err)
	}

	return s.setStatus(ctx, session, signup, target)
}

func (s *RosterService) setStatus(ctx context.Context, session *models.GameSession, signup *models.GameSignup, target models.SignupStatus) (*ActionResult, error) {
	if signup.Status == target {
		return NewSuccessResult("Roster already up to date.", nil), nil
	}

	targetName, err := s.playerName(ctx, signup.UserID)
	if err != nil {
		return nil, err
	}
	meta := &RosterMeta{
		TargetUserID:   signup.UserID,
		TargetName:     targetName,
		PreviousStatus: statusPtr(signup.Status),
		TargetStatus:   target,
	}

	if target == models.SignupStatusActive {
		err := s.signups.ActivateWithinCapacity(ctx, session.ID, signup.UserID, session.MaxPlayers, s.now())
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, apperrors.ErrCapacityExceeded
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrSignupNotFound
		default:
			return nil, fmt.Errorf("failed to activate signup: %w", err)
		}
		return NewSuccessResult("Player moved to the active roster.", meta), nil
	}

	if err := s.signups.UpdateStatus(ctx, session.ID, signup.UserID, models.SignupStatusReserve); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSignupNotFound
		}
		return nil, fmt.Errorf("failed to demote signup: %w", err)
	}

	demoted := signup.UserID
	promoted := s.promoteNext(ctx, session, &demoted)
	return NewSuccessResult(withPromotion("Player moved to the standby list.", promoted, meta), meta), nil
}

// AdminAdd puts a team member on a session roster. A player who is already
// signed up is moved as AdminSetStatus would.
func (s *RosterService) AdminAdd(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID, target models.SignupStatus) (*ActionResult, error) {
	actorID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidSignupStatus
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := requireManager(ctx, s.memberships, session.TeamID, actorID, apperrors.ErrNotRosterManager); err != nil {
		return nil, err
	}

	if _, err := s.memberships.GetMembership(ctx, session.TeamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotOnTeam
		}
		return nil, fmt.Errorf("failed to check player membership: %w", err)
	}

	existing, err := s.signups.Get(ctx, sessionID, userID)
	if err == nil {
		return s.setStatus(ctx, session, existing, target)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load signup: %w", err)
	}

	targetName, err := s.playerName(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	signup := &models.GameSignup{
		SessionID: sessionID,
		UserID:    userID,
		Status:    target,
		CreatedAt: now,
	}
	if target == models.SignupStatusActive {
		signup.PromotedAt = &now
	}

	if err := s.signups.InsertWithinCapacity(ctx, signup, session.MaxPlayers); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, apperrors.ErrCapacityExceededAdd
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrSignupExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrSessionNotFound
		default:
			return nil, fmt.Errorf("failed to add player: %w", err)
		}
	}

	meta := &RosterMeta{TargetUserID: userID, TargetName: targetName, TargetStatus: target}
	if target == models.SignupStatusActive {
		return NewSuccessResult("Player added to the active roster.", meta), nil
	}
	return NewSuccessResult("Player added to the standby list.", meta), nil
}

// AdminRemove takes a player off a session roster and promotes the next
// reserve when an active slot opens
func (s *RosterService) AdminRemove(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID) (*ActionResult, error) {
	actorID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := requireManager(ctx, s.memberships, session.TeamID, actorID, apperrors.ErrNotRosterManager); err != nil {
		return nil, err
	}

	removed, err := s.signups.Delete(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewSuccessResult("Player was not on this roster.", nil), nil
		}
		return nil, fmt.Errorf("failed to remove signup: %w", err)
	}

	targetName := s.lookupName(ctx, userID)
	if targetName == "" {
		targetName = defaultPlayerName
	}
	meta := &RosterMeta{
		TargetUserID:   userID,
		TargetName:     targetName,
		PreviousStatus: statusPtr(removed.Status),
		TargetStatus:   models.SignupStatusNone,
	}

	var promoted *promotion
	if removed.Status == models.SignupStatusActive {
		promoted = s.promoteNext(ctx, session, nil)
	}

	message := fmt.Sprintf("%s removed from this game.", targetName)
	return NewSuccessResult(withPromotion(message, promoted, meta), meta), nil
}

func (s *RosterService) loadSession(ctx context.Context, sessionID uuid.UUID) (*models.GameSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load game session: %w", err)
	}
	return session, nil
}

// playerName loads the display name used in roster messages before a write
func (s *RosterService) playerName(ctx context.Context, userID uuid.UUID) (string, error) {
	names, err := s.profiles.GetNames(ctx, []uuid.UUID{userID})
	if err != nil {
		return "", fmt.Errorf("failed to load player profile: %w", err)
	}
	if name := names[userID]; name != "" {
		return name, nil
	}
	return defaultPlayerName, nil
}
