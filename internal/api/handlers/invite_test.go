package handlers_test

import (
	"net/http"
	"testing"

	"gotnext-backend/internal/api/handlers"
	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/mocks"
	"gotnext-backend/internal/service"
	"gotnext-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InviteHandlerTestSuite defines the test suite for InviteHandler
type InviteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInviteServiceInterface
	handler     *handlers.InviteHandler
	httpSuite   *testutils.HTTPTestSuite

	userID uuid.UUID
	teamID uuid.UUID
}

func (suite *InviteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInviteServiceInterface(suite.ctrl)
	suite.handler = handlers.NewInviteHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.AsUser(suite.userID))
	v1.POST("/teams/:id/invites", suite.handler.CreateInvite)
	v1.POST("/teams/:id/invites/shareable", suite.handler.CreateShareableInvite)
	v1.DELETE("/invites/:id", suite.handler.CancelInvite)
	v1.POST("/invites/:token/accept", suite.handler.AcceptInvite)
}

func (suite *InviteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InviteHandlerTestSuite) TestCreateInvite() {
	path := "/api/v1/teams/" + suite.teamID.String() + "/invites"

	suite.T().Run("Created", func(t *testing.T) {
		email := "sam@example.com"
		suite.mockService.EXPECT().
			CreateInvite(gomock.Any(), auth.NewIdentity(suite.userID), suite.teamID, &service.CreateInviteRequest{Email: email, Role: "player"}).
			Return(&service.InviteResult{
				Success: "Invite sent.",
				Invite:  &models.TeamInvite{TeamID: suite.teamID, Email: &email, Role: models.TeamRolePlayer},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, path, map[string]string{"email": email, "role": "player"})

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Invite sent.", response["success"])
	})

	suite.T().Run("Bad phone", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateInvite(gomock.Any(), gomock.Any(), suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidPhoneNumber)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, path, map[string]string{"email": "sam@example.com", "phone": "0612"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Phone numbers must include the international code, e.g. +31.")
	})
}

func (suite *InviteHandlerTestSuite) TestCreateShareableInvite() {
	suite.mockService.EXPECT().
		CreateShareableInvite(gomock.Any(), gomock.Any(), suite.teamID, &service.CreateShareableInviteRequest{Role: "admin"}).
		Return(&service.InviteResult{Success: "Shareable invite link created.", Invite: &models.TeamInvite{Token: "abc"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+suite.teamID.String()+"/invites/shareable", map[string]string{"role": "admin"})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Shareable invite link created.", response["success"])
}

func (suite *InviteHandlerTestSuite) TestCancelInvite() {
	inviteID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CancelInvite(gomock.Any(), gomock.Any(), inviteID).
			Return(service.NewSuccessResult("Invite cancelled.", nil), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/invites/"+inviteID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not an admin", func(t *testing.T) {
		suite.mockService.EXPECT().
			CancelInvite(gomock.Any(), gomock.Any(), inviteID).
			Return(nil, apperrors.ErrNotInviteManager)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/invites/"+inviteID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Only team admins can manage invites.")
	})
}

func (suite *InviteHandlerTestSuite) TestAcceptInvite() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			AcceptInvite(gomock.Any(), auth.NewIdentity(suite.userID), "tok123").
			Return(service.NewSuccessResult("Invite accepted. You can now see the team on your dashboard.", nil), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invites/tok123/accept", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Already used", func(t *testing.T) {
		suite.mockService.EXPECT().
			AcceptInvite(gomock.Any(), gomock.Any(), "tok123").
			Return(nil, apperrors.ErrInviteAlreadyUsed)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invites/tok123/accept", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "This invite has already been used.")
	})

	suite.T().Run("Unknown token", func(t *testing.T) {
		suite.mockService.EXPECT().
			AcceptInvite(gomock.Any(), gomock.Any(), "missing").
			Return(nil, apperrors.ErrInviteNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invites/missing/accept", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "invite not found")
	})
}

func TestInviteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InviteHandlerTestSuite))
}
