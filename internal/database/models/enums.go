package models

// TeamRole defines the role of a user within a team
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRolePlayer TeamRole = "player"
)

// SignupStatus defines where a player sits on a game roster
type SignupStatus string

const (
	SignupStatusActive  SignupStatus = "active"
	SignupStatusReserve SignupStatus = "reserve"
	// SignupStatusNone is never stored; it describes a player without a signup.
	SignupStatusNone SignupStatus = "none"
)

// RepeatMode defines how the scheduler expands a session into a series
type RepeatMode string

const (
	RepeatModeNone   RepeatMode = "none"
	RepeatModeWeekly RepeatMode = "weekly"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRolePlayer:
		return true
	}
	return false
}

// CanManage reports whether the role may administer rosters, sessions and members
func (r TeamRole) CanManage() bool {
	return r == TeamRoleOwner || r == TeamRoleAdmin
}

// Rank orders roles for member lists, owners first
func (r TeamRole) Rank() int {
	switch r {
	case TeamRoleOwner:
		return 0
	case TeamRoleAdmin:
		return 1
	case TeamRolePlayer:
		return 2
	}
	return 3
}

// IsValid checks if the SignupStatus can be stored on a signup
func (s SignupStatus) IsValid() bool {
	switch s {
	case SignupStatusActive, SignupStatusReserve:
		return true
	}
	return false
}

// IsValid checks if the RepeatMode is valid
func (m RepeatMode) IsValid() bool {
	switch m {
	case RepeatModeNone, RepeatModeWeekly:
		return true
	}
	return false
}
