package service

import (
	"context"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RosterServiceInterface defines the interface for roster transitions
type RosterServiceInterface interface {
	Join(ctx context.Context, identity auth.Identity, sessionID uuid.UUID, requested models.SignupStatus) (*ActionResult, error)
	Leave(ctx context.Context, identity auth.Identity, sessionID uuid.UUID) (*ActionResult, error)
	AdminSetStatus(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID, target models.SignupStatus) (*ActionResult, error)
	AdminAdd(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID, target models.SignupStatus) (*ActionResult, error)
	AdminRemove(ctx context.Context, identity auth.Identity, sessionID, userID uuid.UUID) (*ActionResult, error)
}

// SessionServiceInterface defines the interface for scheduling and listing sessions
type SessionServiceInterface interface {
	Schedule(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *ScheduleSessionRequest) (*ScheduleResult, error)
	ListUpcoming(ctx context.Context, identity auth.Identity) (*UpcomingSessionsResponse, error)
}

// TeamServiceInterface defines the interface for team administration
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, identity auth.Identity, req *CreateTeamRequest) (*CreateTeamResult, error)
	UpdateMemberRole(ctx context.Context, identity auth.Identity, teamID, memberID uuid.UUID, req *UpdateMemberRoleRequest) (*ActionResult, error)
	RemoveMember(ctx context.Context, identity auth.Identity, teamID, memberID uuid.UUID) (*ActionResult, error)
}

// InviteServiceInterface defines the interface for team invites
type InviteServiceInterface interface {
	CreateInvite(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *CreateInviteRequest) (*InviteResult, error)
	CreateShareableInvite(ctx context.Context, identity auth.Identity, teamID uuid.UUID, req *CreateShareableInviteRequest) (*InviteResult, error)
	CancelInvite(ctx context.Context, identity auth.Identity, inviteID uuid.UUID) (*ActionResult, error)
	AcceptInvite(ctx context.Context, identity auth.Identity, token string) (*ActionResult, error)
}

var (
	_ RosterServiceInterface  = (*RosterService)(nil)
	_ SessionServiceInterface = (*SessionService)(nil)
	_ TeamServiceInterface    = (*TeamService)(nil)
	_ InviteServiceInterface  = (*InviteService)(nil)
)
