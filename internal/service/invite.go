package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/logger"
	"gotnext-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultInviteTTL is used when no positive invite lifetime is configured
const DefaultInviteTTL = 7 * 24 * time.Hour

// InviteService handles team invites
type InviteService struct {
	invites     repository.InviteRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	validator   *validator.Validate
	ttl         time.Duration
	now         func() time.Time
}

// NewInviteService creates a new invite service. New invites expire ttl
// after they are created.
func NewInviteService(invites repository.InviteRepositoryInterface, memberships repository.MembershipRepositoryInterface, validator *validator.Validate, ttl time.Duration) *InviteService {
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}
	return &InviteService{
		invites:     invites,
		memberships: memberships,
		validator:   validator,
		ttl:         ttl,
		now:         time.Now,
	}
}

// WithClock replaces the time source, for tests
func (s *InviteService) WithClock(now func() time.Time) *InviteService {
	s.now = now
	return s
}

// CreateInviteRequest represents the request to invite a specific person
type CreateInviteRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=255" example:"sam@example.com"`
	Phone string `json:"phone,omitempty" validate:"max=30" example:"+31612345678"`
	Role  string `json:"role,omitempty" example:"player"`
}

// CreateShareableInviteRequest represents the request to create an open invite link
type CreateShareableInviteRequest struct {
	Role string `json:"role" example:"player"`
}

// InviteResult is the outcome of creating an invite
type InviteResult struct {
	Success string             `json:"success"`
	Invite  *models.TeamInvite `json:"invite"`
}

// CreateInvite invites a person by email, optionally with a phone number
func (s *InviteService) CreateInvite(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *CreateInviteRequest) (*InviteResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if email == "" {
		return nil, apperrors.ErrInviteEmailRequired
	}
	if phone != "" && !strings.HasPrefix(phone, "+") {
		return nil, apperrors.ErrInvalidPhoneNumber
	}

	role, err := parseInviteRole(req.Role)
	if err != nil {
		return nil, err
	}

	req.Email, req.Phone = email, phone
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	if _, err := requireManager(ctx, s.memberships, teamID, userID, apperrors.ErrNotInviteManager); err != nil {
		return nil, err
	}

	invite := &models.TeamInvite{
		TeamID:    teamID,
		Email:     &email,
		Phone:     optionalString(phone),
		Role:      role,
		InvitedBy: userID,
	}
	if err := s.create(ctx, invite); err != nil {
		return nil, err
	}
	return &InviteResult{Success: "Invite sent.", Invite: invite}, nil
}

// CreateShareableInvite creates an invite link anyone holding it can accept
func (s *InviteService) CreateShareableInvite(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *CreateShareableInviteRequest) (*InviteResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	role, err := ParseTeamRole(req.Role)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, s.memberships, teamID, userID, apperrors.ErrNotInviteManager); err != nil {
		return nil, err
	}

	invite := &models.TeamInvite{
		TeamID:    teamID,
		Role:      role,
		InvitedBy: userID,
	}
	if err := s.create(ctx, invite); err != nil {
		return nil, err
	}
	return &InviteResult{Success: "Shareable invite link created.", Invite: invite}, nil
}

// CancelInvite deletes an invite of a team the caller manages
func (s *InviteService) CancelInvite(ctx context.Context, identity auth.Identity, inviteID uuid.UUID) (*ActionResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	if _, err := requireManager(ctx, s.memberships, invite.TeamID, userID, apperrors.ErrNotInviteManager); err != nil {
		return nil, err
	}

	if err := s.invites.Delete(ctx, inviteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to delete invite: %w", err)
	}

	logger.WithContext(ctx).WithField("invite_id", inviteID.String()).Info("invite cancelled")
	return NewSuccessResult("Invite cancelled.", nil), nil
}

// AcceptInvite joins the caller to the invite's team. A caller who is
// already a member keeps their current role.
func (s *InviteService) AcceptInvite(ctx context.Context, identity auth.Identity, token string) (*ActionResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrInviteNotFound
	}

	invite, err := s.invites.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	if invite.IsAccepted() {
		return nil, apperrors.ErrInviteAlreadyUsed
	}
	now := s.now()
	if invite.IsExpired(now) {
		return nil, apperrors.ErrInviteExpired
	}

	if err := s.invites.Accept(ctx, invite, userID, now); err != nil {
		switch {
		case errors.Is(err, repository.ErrInviteAccepted):
			return nil, apperrors.ErrInviteAlreadyUsed
		case errors.Is(err, repository.ErrInviteExpired):
			return nil, apperrors.ErrInviteExpired
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_id": invite.ID.String(),
		"team_id":   invite.TeamID.String(),
	}).Info("invite accepted")

	return NewSuccessResult("Invite accepted. You can now see the team on your dashboard.", nil), nil
}

func (s *InviteService) create(ctx context.Context, invite *models.TeamInvite) error {
	invite.Token = NewInviteToken()
	invite.ExpiresAt = s.now().Add(s.ttl)
	if err := s.invites.Create(ctx, invite); err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_id": invite.ID.String(),
		"team_id":   invite.TeamID.String(),
		"shareable": invite.IsShareable(),
	}).Info("invite created")
	return nil
}

// NewInviteToken returns a 64 character hex token built from two random UUIDs
func NewInviteToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// parseInviteRole defaults an empty role to player
func parseInviteRole(value string) (models.TeamRole, error) {
	if strings.TrimSpace(value) == "" {
		return models.TeamRolePlayer, nil
	}
	return ParseTeamRole(value)
}
