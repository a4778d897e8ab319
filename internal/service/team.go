package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/logger"
	"gotnext-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles team creation and member administration
type TeamService struct {
	teams       repository.TeamRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, memberships repository.MembershipRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		teams:       teams,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"max=100" example:"Tuesday Hoops"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" example:"admin"`
}

// CreateTeamResult is the outcome of creating a team
type CreateTeamResult struct {
	Success string       `json:"success"`
	Team    *models.Team `json:"team"`
}

// CreateTeam creates a team owned by the caller
func (s *TeamService) CreateTeam(ctx context.Context, identity auth.Identity, req *CreateTeamRequest) (*CreateTeamResult, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrTeamNameRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	team := &models.Team{
		Name:    name,
		OwnerID: userID,
	}
	if err := s.teams.CreateWithOwner(ctx, team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{
				Entity:  "team",
				Message: fmt.Sprintf("You already have a team named %q.", name),
			}
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID.String()).Info("team created")
	return &CreateTeamResult{Success: "Team created.", Team: team}, nil
}

// UpdateMemberRole changes the role of a team member. The last owner of a
// team cannot be demoted.
func (s *TeamService) UpdateMemberRole(ctx context.Context, identity auth.Identity, teamID, memberID uuid.UUID, req *UpdateMemberRoleRequest) (*ActionResult, error) {
	callerID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	role, err := ParseTeamRole(req.Role)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, s.memberships, teamID, callerID, apperrors.ErrNotTeamManager); err != nil {
		return nil, err
	}

	member, err := s.getMember(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	if member.Role == models.TeamRoleOwner && role != models.TeamRoleOwner {
		if err := s.ensureAnotherOwner(ctx, teamID, apperrors.ErrLastOwnerDemotion); err != nil {
			return nil, err
		}
	}

	if err := s.memberships.UpdateRole(ctx, teamID, memberID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   teamID.String(),
		"member_id": memberID.String(),
		"role":      role,
	}).Info("member role updated")

	return NewSuccessResult("Role updated.", nil), nil
}

// RemoveMember removes a member from a team. The last owner cannot be removed.
func (s *TeamService) RemoveMember(ctx context.Context, identity auth.Identity, teamID, memberID uuid.UUID) (*ActionResult, error) {
	callerID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, s.memberships, teamID, callerID, apperrors.ErrNotTeamManager); err != nil {
		return nil, err
	}

	member, err := s.getMember(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	if member.Role == models.TeamRoleOwner {
		if err := s.ensureAnotherOwner(ctx, teamID, apperrors.ErrLastOwnerRemoval); err != nil {
			return nil, err
		}
	}

	if err := s.memberships.Delete(ctx, teamID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   teamID.String(),
		"member_id": memberID.String(),
	}).Info("member removed")

	return NewSuccessResult("Member removed.", nil), nil
}

func (s *TeamService) getMember(ctx context.Context, teamID, memberID uuid.UUID) (*models.TeamMember, error) {
	member, err := s.memberships.GetMembership(ctx, teamID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func (s *TeamService) ensureAnotherOwner(ctx context.Context, teamID uuid.UUID, lastOwnerErr error) error {
	owners, err := s.memberships.CountByRole(ctx, teamID, models.TeamRoleOwner)
	if err != nil {
		return fmt.Errorf("failed to count team owners: %w", err)
	}
	if owners <= 1 {
		return lastOwnerErr
	}
	return nil
}
