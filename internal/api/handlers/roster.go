package handlers

import (
	"errors"
	"io"
	"net/http"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	"gotnext-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RosterHandler handles HTTP requests for session rosters
type RosterHandler struct {
	rosterService service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// JoinRequest is the optional body of a join request
type JoinRequest struct {
	Status string `json:"status" example:"active"`
}

// SetStatusRequest represents the request to move a player on the roster
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"reserve"`
}

// AddPlayerRequest represents the request to add a team member to a roster
type AddPlayerRequest struct {
	UserID string `json:"user_id" binding:"required" example:"0c1f4ad2-7d9e-4c43-9a34-6a4b3f2e8d11"`
	Status string `json:"status" example:"active"`
}

// Join handles POST /sessions/:id/join
// @Summary Join a game
// @Description Sign up for a game session. A full roster puts the caller on the standby list.
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body JoinRequest false "Requested status, defaults to active"
// @Success 200 {object} service.ActionResult "Signup saved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/{id}/join [post]
func (h *RosterHandler) Join(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "session")
	if !ok {
		return
	}

	var req JoinRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	status, err := service.ParseSignupStatus(req.Status, models.SignupStatusActive)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.rosterService.Join(c, auth.IdentityFromContext(c), sessionID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Leave handles POST /sessions/:id/leave
// @Summary Leave a game
// @Description Remove the caller from a game session. The oldest standby player takes a freed active slot.
// @Tags rosters
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.ActionResult "Left the game"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/{id}/leave [post]
func (h *RosterHandler) Leave(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "session")
	if !ok {
		return
	}

	result, err := h.rosterService.Leave(c, auth.IdentityFromContext(c), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetStatus handles PUT /sessions/:id/signups/:userId
// @Summary Move a player
// @Description Move a signed-up player between the active roster and the standby list
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param userId path string true "Player user ID (UUID)"
// @Param request body SetStatusRequest true "Target status"
// @Success 200 {object} service.ActionResult "Roster updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Session or signup not found"
// @Failure 409 {object} ErrorResponse "Active roster is full"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/{id}/signups/{userId} [put]
func (h *RosterHandler) SetStatus(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "session")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status, err := service.ParseSignupStatus(req.Status, "")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.rosterService.AdminSetStatus(c, auth.IdentityFromContext(c), sessionID, userID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddPlayer handles POST /sessions/:id/signups
// @Summary Add a player
// @Description Put a team member on a game roster. Adding to a full active roster fails.
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body AddPlayerRequest true "Player and status"
// @Success 200 {object} service.ActionResult "Player added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Active roster is full"
// @Failure 422 {object} ErrorResponse "Player is not on the team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/{id}/signups [post]
func (h *RosterHandler) AddPlayer(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "session")
	if !ok {
		return
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
		return
	}

	status, err := service.ParseSignupStatus(req.Status, models.SignupStatusActive)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.rosterService.AdminAdd(c, auth.IdentityFromContext(c), sessionID, userID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemovePlayer handles DELETE /sessions/:id/signups/:userId
// @Summary Remove a player
// @Description Take a player off a game roster. The oldest standby player takes a freed active slot.
// @Tags rosters
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param userId path string true "Player user ID (UUID)"
// @Success 200 {object} service.ActionResult "Player removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/{id}/signups/{userId} [delete]
func (h *RosterHandler) RemovePlayer(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "session")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	result, err := h.rosterService.AdminRemove(c, auth.IdentityFromContext(c), sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
