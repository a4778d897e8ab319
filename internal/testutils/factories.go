package testutils

import (
	"fmt"
	"time"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    "Thursday Pickup",
		OwnerID: uuid.New(),
	}
}

// WithOwner creates a test Team owned by the given user
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// MemberFactory provides methods to create test TeamMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test TeamMember with the player role
func (f *MemberFactory) Create(teamID, userID uuid.UUID) *models.TeamMember {
	return f.WithRole(teamID, userID, models.TeamRolePlayer)
}

// WithRole creates a test TeamMember with a specific role
func (f *MemberFactory) WithRole(teamID, userID uuid.UUID, role models.TeamRole) *models.TeamMember {
	return &models.TeamMember{
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// WithName creates a test Profile with a full name
func (f *ProfileFactory) WithName(userID uuid.UUID, name string) *models.Profile {
	return &models.Profile{
		ID:       userID,
		FullName: &name,
	}
}

// SessionFactory provides methods to create test GameSession data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test GameSession starting tomorrow with room for ten players
func (f *SessionFactory) Create(teamID uuid.UUID) *models.GameSession {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	location := "Riverside Courts"
	return &models.GameSession{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TeamID:     teamID,
		Title:      "Pickup Game",
		Location:   &location,
		StartsAt:   start,
		EndsAt:     start.Add(90 * time.Minute),
		MaxPlayers: 10,
		CreatedBy:  uuid.New(),
	}
}

// WithCapacity creates a test GameSession with a specific player limit
func (f *SessionFactory) WithCapacity(teamID uuid.UUID, maxPlayers int) *models.GameSession {
	session := f.Create(teamID)
	session.MaxPlayers = maxPlayers
	return session
}

// WithStart creates a test GameSession at a specific time
func (f *SessionFactory) WithStart(teamID uuid.UUID, start time.Time, duration time.Duration) *models.GameSession {
	session := f.Create(teamID)
	session.StartsAt = start
	session.EndsAt = start.Add(duration)
	return session
}

// SignupFactory provides methods to create test GameSignup data
type SignupFactory struct{}

// NewSignupFactory creates a new SignupFactory
func NewSignupFactory() *SignupFactory {
	return &SignupFactory{}
}

// Create creates a test GameSignup in the given status
func (f *SignupFactory) Create(sessionID, userID uuid.UUID, status models.SignupStatus, createdAt time.Time) *models.GameSignup {
	signup := &models.GameSignup{
		SessionID: sessionID,
		UserID:    userID,
		Status:    status,
		CreatedAt: createdAt,
	}
	if status == models.SignupStatusActive {
		promotedAt := createdAt
		signup.PromotedAt = &promotedAt
	}
	return signup
}

// InviteFactory provides methods to create test TeamInvite data
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// Create creates a shareable test TeamInvite for the player role
func (f *InviteFactory) Create(teamID, invitedBy uuid.UUID) *models.TeamInvite {
	return &models.TeamInvite{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TeamID:    teamID,
		Token:     fmt.Sprintf("tok-%s", uuid.NewString()),
		Role:      models.TeamRolePlayer,
		InvitedBy: invitedBy,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

// WithEmail creates a test TeamInvite addressed to an email
func (f *InviteFactory) WithEmail(teamID, invitedBy uuid.UUID, email string) *models.TeamInvite {
	invite := f.Create(teamID, invitedBy)
	invite.Email = &email
	return invite
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team    *TeamFactory
	Member  *MemberFactory
	Profile *ProfileFactory
	Session *SessionFactory
	Signup  *SignupFactory
	Invite  *InviteFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Member:  NewMemberFactory(),
		Profile: NewProfileFactory(),
		Session: NewSessionFactory(),
		Signup:  NewSignupFactory(),
		Invite:  NewInviteFactory(),
	}
}
