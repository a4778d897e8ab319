package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
)

// RosterPlayer is one entry of a session roster
type RosterPlayer struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

// SessionRosterView is an upcoming session with its active and standby lists
type SessionRosterView struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Location       *string             `json:"location,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	StartsAt       string              `json:"starts_at"`
	EndsAt         string              `json:"ends_at"`
	MaxPlayers     int                 `json:"max_players"`
	ActiveCount    int                 `json:"active_count"`
	ReserveCount   int                 `json:"reserve_count"`
	ActivePlayers  []RosterPlayer      `json:"active_players"`
	ReservePlayers []RosterPlayer      `json:"reserve_players"`
	UserStatus     models.SignupStatus `json:"user_status"`
	UserPosition   *int                `json:"user_position,omitempty"`
}

// TeamMemberView is one member of a team
type TeamMemberView struct {
	UserID uuid.UUID       `json:"user_id"`
	Name   string          `json:"name"`
	Role   models.TeamRole `json:"role"`
}

// TeamSessionsView groups upcoming sessions by team. Invites are only
// filled in for callers who manage the team.
type TeamSessionsView struct {
	TeamID    uuid.UUID           `json:"team_id"`
	TeamName  string              `json:"team_name"`
	Role      models.TeamRole     `json:"role"`
	CanManage bool                `json:"can_manage"`
	Members   []TeamMemberView    `json:"members"`
	Invites   []models.TeamInvite `json:"invites,omitempty"`
	Sessions  []SessionRosterView `json:"sessions"`
}

// UpcomingSessionsResponse is the roster view for the caller's teams
type UpcomingSessionsResponse struct {
	Teams []TeamSessionsView `json:"teams"`
}

// ListUpcoming returns the sessions that have not ended yet for every team
// the caller belongs to, teams ordered by name and sessions by start time.
// Each team carries its member list, and managed teams their open invites.
func (s *SessionService) ListUpcoming(ctx context.Context, identity auth.Identity) (*UpcomingSessionsResponse, error) {
	userID, err := requireCaller(identity)
	if err != nil {
		return nil, err
	}

	memberships, err := s.memberships.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	response := &UpcomingSessionsResponse{Teams: []TeamSessionsView{}}
	if len(memberships) == 0 {
		return response, nil
	}

	roles := make(map[uuid.UUID]models.TeamRole, len(memberships))
	teamIDs := make([]uuid.UUID, 0, len(memberships))
	var managedIDs []uuid.UUID
	for _, m := range memberships {
		roles[m.TeamID] = m.Role
		teamIDs = append(teamIDs, m.TeamID)
		if m.Role.CanManage() {
			managedIDs = append(managedIDs, m.TeamID)
		}
	}

	teams, err := s.teams.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	sessions, err := s.sessions.ListUpcomingByTeams(ctx, teamIDs, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming sessions: %w", err)
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for _, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID)
	}
	signups, err := s.signups.ListBySessions(ctx, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load signups: %w", err)
	}

	members, err := s.memberships.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	invitesByTeam := make(map[uuid.UUID][]models.TeamInvite, len(managedIDs))
	if len(managedIDs) > 0 {
		invites, err := s.invites.ListPendingByTeams(ctx, managedIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load invites: %w", err)
		}
		for _, invite := range invites {
			invitesByTeam[invite.TeamID] = append(invitesByTeam[invite.TeamID], invite)
		}
	}

	userIDs := make([]uuid.UUID, 0, len(signups)+len(members))
	seen := make(map[uuid.UUID]bool, len(signups)+len(members))
	addUser := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}
	bySession := make(map[uuid.UUID][]models.GameSignup, len(sessions))
	for _, signup := range signups {
		bySession[signup.SessionID] = append(bySession[signup.SessionID], signup)
		addUser(signup.UserID)
	}
	for _, member := range members {
		addUser(member.UserID)
	}
	names, err := s.profiles.GetNames(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load player names: %w", err)
	}

	membersByTeam := make(map[uuid.UUID][]TeamMemberView, len(teams))
	for _, member := range members {
		membersByTeam[member.TeamID] = append(membersByTeam[member.TeamID], TeamMemberView{
			UserID: member.UserID,
			Name:   displayName(names, member.UserID),
			Role:   member.Role,
		})
	}

	byTeam := make(map[uuid.UUID][]SessionRosterView, len(teams))
	for i := range sessions {
		view := buildRosterView(&sessions[i], bySession[sessions[i].ID], names, userID)
		byTeam[sessions[i].TeamID] = append(byTeam[sessions[i].TeamID], view)
	}

	for _, team := range teams {
		role := roles[team.ID]
		views := byTeam[team.ID]
		if views == nil {
			views = []SessionRosterView{}
		}
		teamMembers := membersByTeam[team.ID]
		if teamMembers == nil {
			teamMembers = []TeamMemberView{}
		}
		sortMembers(teamMembers)

		teamView := TeamSessionsView{
			TeamID:    team.ID,
			TeamName:  team.Name,
			Role:      role,
			CanManage: role.CanManage(),
			Members:   teamMembers,
			Sessions:  views,
		}
		if teamView.CanManage {
			teamView.Invites = invitesByTeam[team.ID]
		}
		response.Teams = append(response.Teams, teamView)
	}
	return response, nil
}

// buildRosterView splits signups, already in created_at order, into the
// active and standby lists and locates the caller
func buildRosterView(session *models.GameSession, signups []models.GameSignup, names map[uuid.UUID]string, viewer uuid.UUID) SessionRosterView {
	view := SessionRosterView{
		ID:             session.ID,
		Title:          session.Title,
		Location:       session.Location,
		Notes:          session.Description,
		StartsAt:       session.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:         session.EndsAt.UTC().Format(time.RFC3339),
		MaxPlayers:     session.MaxPlayers,
		ActivePlayers:  []RosterPlayer{},
		ReservePlayers: []RosterPlayer{},
		UserStatus:     models.SignupStatusNone,
	}

	for _, signup := range signups {
		name := displayName(names, signup.UserID)

		var list *[]RosterPlayer
		if signup.Status == models.SignupStatusActive {
			list = &view.ActivePlayers
		} else {
			list = &view.ReservePlayers
		}
		position := len(*list) + 1
		*list = append(*list, RosterPlayer{UserID: signup.UserID, Name: name, Position: position})

		if signup.UserID == viewer {
			view.UserStatus = signup.Status
			p := position
			view.UserPosition = &p
		}
	}

	view.ActiveCount = len(view.ActivePlayers)
	view.ReserveCount = len(view.ReservePlayers)
	return view
}

// sortMembers orders owners first, then admins, then players, each by name
func sortMembers(members []TeamMemberView) {
	sort.SliceStable(members, func(i, j int) bool {
		if ri, rj := members[i].Role.Rank(), members[j].Role.Rank(); ri != rj {
			return ri < rj
		}
		return members[i].Name < members[j].Name
	})
}

func displayName(names map[uuid.UUID]string, userID uuid.UUID) string {
	if name := names[userID]; name != "" {
		return name
	}
	return "Player"
}
