package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this game"
	Message string // Replaces the generated text when set
}

func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError is returned when the caller has no identity
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the caller lacks the required team role
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotOnTeamError is returned when the target user has no membership on the team
type NotOnTeamError struct {
	Message string
}

func (e *NotOnTeamError) Error() string {
	return e.Message
}

// CapacityExceededError is returned by the strict admin roster paths when
// the active roster is already full.
type CapacityExceededError struct {
	Message string
}

func (e *CapacityExceededError) Error() string {
	return e.Message
}

// Is matches any CapacityExceededError regardless of message
func (e *CapacityExceededError) Is(target error) bool {
	_, ok := target.(*CapacityExceededError)
	return ok
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrSessionNotFound = &NotFoundError{Entity: "game session"}
	ErrSignupNotFound  = &NotFoundError{Entity: "signup"}
	ErrMemberNotFound  = &NotFoundError{Entity: "member"}
	ErrInviteNotFound  = &NotFoundError{Entity: "invite"}
	ErrProfileNotFound = &NotFoundError{Entity: "profile"}
)

// Already Exists Errors
var (
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "with this name for this owner"}
	ErrSignupExists = &AlreadyExistsError{Entity: "signup", Context: "for this player and game"}
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "on this team"}
)

// Roster Errors
var (
	ErrCapacityExceeded      = &CapacityExceededError{Message: "Active roster is full. Remove a player before promoting."}
	ErrCapacityExceededAdd   = &CapacityExceededError{Message: "Active roster is full. Move someone to the standby list first."}
	ErrPlayerNotOnTeam       = &NotOnTeamError{Message: "Player must be on the team roster first."}
	ErrInvalidSignupStatus   = &ValidationError{Field: "status", Message: "status must be one of: active, reserve"}
	ErrInvalidRole           = &ValidationError{Field: "role", Message: "Invalid role selection."}
	ErrLastOwnerDemotion     = &ValidationError{Field: "role", Message: "Each team must keep at least one owner."}
	ErrLastOwnerRemoval      = &ValidationError{Field: "user_id", Message: "Promote another member to owner before removing this teammate."}
	ErrInviteAlreadyUsed     = &ValidationError{Field: "token", Message: "This invite has already been used."}
	ErrInviteExpired         = &ValidationError{Field: "token", Message: "This invite has expired. Ask the organiser for a new one."}
	ErrInvalidPhoneNumber    = &ValidationError{Field: "phone", Message: "Phone numbers must include the international code, e.g. +31."}
	ErrInviteEmailRequired   = &ValidationError{Field: "email", Message: "Email is required for invites."}
	ErrInvalidRepeatMode     = &ValidationError{Field: "repeat_mode", Message: "repeat mode must be one of: none, weekly"}
	ErrSessionTitleRequired  = &ValidationError{Field: "title", Message: "Title is required."}
	ErrSessionTimesRequired  = &ValidationError{Field: "starts_at", Message: "Start and end times are required."}
	ErrInvalidSessionTimes   = &ValidationError{Field: "starts_at", Message: "Invalid start or end date."}
	ErrSessionEndBeforeStart = &ValidationError{Field: "ends_at", Message: "End time must be after start time."}
	ErrInvalidMaxPlayers     = &ValidationError{Field: "max_players", Message: "Max players must be a positive number."}
	ErrTeamNameRequired      = &ValidationError{Field: "name", Message: "Team name is required."}
)

// Authentication / Authorization Errors
var (
	ErrNotAuthenticated  = &AuthenticationError{Message: "You must be signed in to continue."}
	ErrNotTeamMember     = &AuthorizationError{Message: "Only team members can join this game."}
	ErrNotRosterManager  = &AuthorizationError{Message: "Only team admins can manage rosters."}
	ErrNotSessionManager = &AuthorizationError{Message: "Only team admins can schedule games."}
	ErrNotTeamManager    = &AuthorizationError{Message: "Only team admins can manage members."}
	ErrNotInviteManager  = &AuthorizationError{Message: "Only team admins can manage invites."}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsNotOnTeam checks if an error is a NotOnTeamError
func IsNotOnTeam(err error) bool {
	var notOnTeamErr *NotOnTeamError
	return errors.As(err, &notOnTeamErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, &CapacityExceededError{})
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
