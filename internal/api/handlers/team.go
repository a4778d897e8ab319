package handlers

import (
	"net/http"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team owned by the caller
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.CreateTeamResult "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 409 {object} ErrorResponse "Team name already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.teamService.CreateTeam(c, auth.IdentityFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateMemberRole handles PUT /teams/:id/members/:userId
// @Summary Change a member's role
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "Member user ID (UUID)"
// @Param request body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.ActionResult "Role updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [put]
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.teamService.UpdateMemberRole(c, auth.IdentityFromContext(c), teamID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "Member user ID (UUID)"
// @Success 200 {object} service.ActionResult "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	result, err := h.teamService.RemoveMember(c, auth.IdentityFromContext(c), teamID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
