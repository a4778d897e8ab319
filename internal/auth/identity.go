package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is the caller of an operation. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
}

// NewIdentity returns the identity of a signed-in user
func NewIdentity(userID uuid.UUID) Identity {
	return Identity{UserID: userID}
}

// Anonymous returns an identity without a user
func Anonymous() Identity {
	return Identity{}
}

// CurrentUser returns the caller's user id, or false when nobody is signed in
func (i Identity) CurrentUser() (uuid.UUID, bool) {
	return i.UserID, i.UserID != uuid.Nil
}

// IdentityFromContext builds the caller identity from the user id placed on
// the gin context by RequireAuth
func IdentityFromContext(c *gin.Context) Identity {
	raw, ok := c.Get("user_id")
	if !ok {
		return Anonymous()
	}
	value, ok := raw.(string)
	if !ok {
		return Anonymous()
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return Anonymous()
	}
	return NewIdentity(userID)
}
