package handlers

import (
	"net/http"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for game sessions
type SessionHandler struct {
	sessionService service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// ScheduleSessions handles POST /teams/:id/sessions
// @Summary Schedule games
// @Description Schedule a single game or a weekly series of up to 12 games
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.ScheduleSessionRequest true "Session details"
// @Success 201 {object} service.ScheduleResult "Games scheduled"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 403 {object} ErrorResponse "Not a team admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/sessions [post]
func (h *SessionHandler) ScheduleSessions(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.ScheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.sessionService.Schedule(c, auth.IdentityFromContext(c), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListUpcoming handles GET /sessions/upcoming
// @Summary Upcoming games
// @Description List upcoming games with rosters for every team the caller belongs to
// @Tags sessions
// @Produce json
// @Success 200 {object} service.UpcomingSessionsResponse "Upcoming games"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/upcoming [get]
func (h *SessionHandler) ListUpcoming(c *gin.Context) {
	result, err := h.sessionService.ListUpcoming(c, auth.IdentityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
