package repository

import (
	"context"
	"time"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error)
}

// MembershipRepositoryInterface defines the interface for team membership operations
type MembershipRepositoryInterface interface {
	GetMembership(ctx context.Context, teamID, userID uuid.UUID) (*models.TeamMember, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.TeamMember, error)
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TeamMember, error)
	UpdateRole(ctx context.Context, teamID, userID uuid.UUID, role models.TeamRole) error
	Delete(ctx context.Context, teamID, userID uuid.UUID) error
	CountByRole(ctx context.Context, teamID uuid.UUID, role models.TeamRole) (int64, error)
}

// ProfileRepositoryInterface defines the interface for profile lookups
type ProfileRepositoryInterface interface {
	GetNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// SessionRepositoryInterface defines the interface for game session operations
type SessionRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	CreateBatch(ctx context.Context, sessions []models.GameSession) error
	ListUpcomingByTeams(ctx context.Context, teamIDs []uuid.UUID, from time.Time) ([]models.GameSession, error)
}

// SignupRepositoryInterface defines the interface for roster signup operations
type SignupRepositoryInterface interface {
	Get(ctx context.Context, sessionID, userID uuid.UUID) (*models.GameSignup, error)
	CountByStatus(ctx context.Context, sessionID uuid.UUID, status models.SignupStatus) (int64, error)
	InsertOrWaitlist(ctx context.Context, signup *models.GameSignup, capacity int) error
	InsertWithinCapacity(ctx context.Context, signup *models.GameSignup, capacity int) error
	UpdateStatus(ctx context.Context, sessionID, userID uuid.UUID, status models.SignupStatus) error
	ActivateWithinCapacity(ctx context.Context, sessionID, userID uuid.UUID, capacity int, at time.Time) error
	Delete(ctx context.Context, sessionID, userID uuid.UUID) (*models.GameSignup, error)
	OldestReserve(ctx context.Context, sessionID uuid.UUID, exclude *uuid.UUID) (*models.GameSignup, error)
	PromoteIfReserve(ctx context.Context, signupID uint64, capacity int, at time.Time) (bool, error)
	ListBySessions(ctx context.Context, sessionIDs []uuid.UUID) ([]models.GameSignup, error)
}

// InviteRepositoryInterface defines the interface for team invite operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.TeamInvite) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamInvite, error)
	GetByToken(ctx context.Context, token string) (*models.TeamInvite, error)
	ListPendingByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TeamInvite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Accept(ctx context.Context, invite *models.TeamInvite, userID uuid.UUID, at time.Time) error
}
