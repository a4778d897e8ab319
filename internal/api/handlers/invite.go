package handlers

import (
	"net/http"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for team invites
type InviteHandler struct {
	inviteService service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// CreateInvite handles POST /teams/:id/invites
// @Summary Invite a player
// @Description Invite someone to a team by email, optionally with a phone number
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.CreateInviteRequest true "Invite details"
// @Success 201 {object} service.InviteResult "Invite sent"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.inviteService.CreateInvite(c, auth.IdentityFromContext(c), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CreateShareableInvite handles POST /teams/:id/invites/shareable
// @Summary Create an invite link
// @Description Create an invite link that anyone holding it can accept
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.CreateShareableInviteRequest true "Role granted by the link"
// @Success 201 {object} service.InviteResult "Invite link created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invites/shareable [post]
func (h *InviteHandler) CreateShareableInvite(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.CreateShareableInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.inviteService.CreateShareableInvite(c, auth.IdentityFromContext(c), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CancelInvite handles DELETE /invites/:id
// @Summary Cancel an invite
// @Tags invites
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 200 {object} service.ActionResult "Invite cancelled"
// @Failure 400 {object} ErrorResponse "Invalid invite ID"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invites/{id} [delete]
func (h *InviteHandler) CancelInvite(c *gin.Context) {
	inviteID, ok := parseUUIDParam(c, "id", "invite")
	if !ok {
		return
	}

	result, err := h.inviteService.CancelInvite(c, auth.IdentityFromContext(c), inviteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AcceptInvite handles POST /invites/:token/accept
// @Summary Accept an invite
// @Description Join the invite's team. Existing members keep their role.
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} service.ActionResult "Invite accepted"
// @Failure 400 {object} ErrorResponse "Invite already used"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invites/{token}/accept [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	result, err := h.inviteService.AcceptInvite(c, auth.IdentityFromContext(c), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
