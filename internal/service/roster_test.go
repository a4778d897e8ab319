package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/database/models"
	apperrors "gotnext-backend/internal/errors"
	"gotnext-backend/internal/mocks"
	"gotnext-backend/internal/repository"
	"gotnext-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RosterServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *mocks.MockSessionRepositoryInterface
	mockSignupRepo  *mocks.MockSignupRepositoryInterface
	mockMemberRepo  *mocks.MockMembershipRepositoryInterface
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	rosterService   *service.RosterService

	ctx     context.Context
	now     time.Time
	teamID  uuid.UUID
	session *models.GameSession
	adminID uuid.UUID
	admin   auth.Identity
	nextID  uint64
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessionRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockSignupRepo = mocks.NewMockSignupRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)

	suite.ctx = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.rosterService = service.NewRosterService(
		suite.mockSessionRepo,
		suite.mockSignupRepo,
		suite.mockMemberRepo,
		suite.mockProfileRepo,
	).WithClock(func() time.Time { return suite.now })

	suite.teamID = uuid.New()
	suite.session = &models.GameSession{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamID:     suite.teamID,
		Title:      "Thursday pickup",
		MaxPlayers: 2,
	}
	suite.adminID = uuid.New()
	suite.admin = auth.NewIdentity(suite.adminID)
}

func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterServiceTestSuite) expectSession() {
	suite.mockSessionRepo.EXPECT().GetByID(suite.ctx, suite.session.ID).Return(suite.session, nil)
}

func (suite *RosterServiceTestSuite) expectMember(userID uuid.UUID, role models.TeamRole) {
	suite.mockMemberRepo.EXPECT().
		GetMembership(suite.ctx, suite.teamID, userID).
		Return(&models.TeamMember{TeamID: suite.teamID, UserID: userID, Role: role}, nil)
}

func (suite *RosterServiceTestSuite) expectName(userID uuid.UUID, name string) {
	names := map[uuid.UUID]string{}
	if name != "" {
		names[userID] = name
	}
	suite.mockProfileRepo.EXPECT().GetNames(suite.ctx, []uuid.UUID{userID}).Return(names, nil)
}

func (suite *RosterServiceTestSuite) signup(userID uuid.UUID, status models.SignupStatus) *models.GameSignup {
	suite.nextID++
	return &models.GameSignup{
		ID:        suite.nextID,
		SessionID: suite.session.ID,
		UserID:    userID,
		Status:    status,
		CreatedAt: suite.now.Add(-time.Hour),
	}
}

// Join

func (suite *RosterServiceTestSuite) TestJoin_NotAuthenticated() {
	result, err := suite.rosterService.Join(suite.ctx, auth.Anonymous(), suite.session.ID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthenticated)
}

func (suite *RosterServiceTestSuite) TestJoin_InvalidStatus() {
	userID := uuid.New()

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusNone)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSignupStatus)
}

func (suite *RosterServiceTestSuite) TestJoin_SessionNotFound() {
	suite.mockSessionRepo.EXPECT().GetByID(suite.ctx, suite.session.ID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(uuid.New()), suite.session.ID, "")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionNotFound)
}

func (suite *RosterServiceTestSuite) TestJoin_NotTeamMember() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().GetMembership(suite.ctx, suite.teamID, userID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamMember)
}

func (suite *RosterServiceTestSuite) TestJoin_ActiveWhenRoomAvailable() {
	userID := uuid.New()
	suite.expectSession()
	suite.expectMember(userID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockSignupRepo.EXPECT().
		InsertOrWaitlist(suite.ctx, gomock.Any(), suite.session.MaxPlayers).
		DoAndReturn(func(_ context.Context, signup *models.GameSignup, _ int) error {
			assert.Equal(suite.T(), models.SignupStatusActive, signup.Status)
			assert.Equal(suite.T(), suite.now, signup.CreatedAt)
			require.NotNil(suite.T(), signup.PromotedAt)
			return nil
		})

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, "")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Saved your spot for this game.", result.Success)
	require.NotNil(suite.T(), result.Meta)
	assert.Equal(suite.T(), userID, result.Meta.TargetUserID)
	assert.Equal(suite.T(), models.SignupStatusActive, result.Meta.TargetStatus)
}

func (suite *RosterServiceTestSuite) TestJoin_FullRosterFallsBackToReserve() {
	userID := uuid.New()
	suite.expectSession()
	suite.expectMember(userID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockSignupRepo.EXPECT().
		InsertOrWaitlist(suite.ctx, gomock.Any(), suite.session.MaxPlayers).
		DoAndReturn(func(_ context.Context, signup *models.GameSignup, _ int) error {
			signup.Status = models.SignupStatusReserve
			signup.PromotedAt = nil
			return nil
		})

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Added you to the standby list.", result.Success)
	assert.Equal(suite.T(), models.SignupStatusReserve, result.Meta.TargetStatus)
}

func (suite *RosterServiceTestSuite) TestJoin_RequestedReserve() {
	userID := uuid.New()
	suite.expectSession()
	suite.expectMember(userID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockSignupRepo.EXPECT().
		InsertOrWaitlist(suite.ctx, gomock.Any(), suite.session.MaxPlayers).
		DoAndReturn(func(_ context.Context, signup *models.GameSignup, _ int) error {
			assert.Equal(suite.T(), models.SignupStatusReserve, signup.Status)
			assert.Nil(suite.T(), signup.PromotedAt)
			return nil
		})

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusReserve)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Added you to the standby list.", result.Success)
}

func (suite *RosterServiceTestSuite) TestJoin_AlreadySignedUpIsNoOp() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().
		Get(suite.ctx, suite.session.ID, userID).
		Return(suite.signup(userID, models.SignupStatusReserve), nil)

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Added you to the standby list.", result.Success)
	assert.Equal(suite.T(), models.SignupStatusReserve, result.Meta.TargetStatus)
}

func (suite *RosterServiceTestSuite) TestJoin_FormerMemberWithSignupIsNoOp() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().
		Get(suite.ctx, suite.session.ID, userID).
		Return(suite.signup(userID, models.SignupStatusActive), nil)
	// membership is not consulted once the signup exists
	suite.mockMemberRepo.EXPECT().GetMembership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Saved your spot for this game.", result.Success)
	assert.Equal(suite.T(), models.SignupStatusActive, result.Meta.TargetStatus)
}

func (suite *RosterServiceTestSuite) TestJoin_ConcurrentDuplicateReturnsExisting() {
	userID := uuid.New()
	suite.expectSession()
	suite.expectMember(userID, models.TeamRolePlayer)
	gomock.InOrder(
		suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound),
		suite.mockSignupRepo.EXPECT().InsertOrWaitlist(suite.ctx, gomock.Any(), suite.session.MaxPlayers).Return(gorm.ErrDuplicatedKey),
		suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil),
	)

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Saved your spot for this game.", result.Success)
}

func (suite *RosterServiceTestSuite) TestJoin_StoreError() {
	userID := uuid.New()
	suite.expectSession()
	suite.expectMember(userID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockSignupRepo.EXPECT().InsertOrWaitlist(suite.ctx, gomock.Any(), suite.session.MaxPlayers).Return(errors.New("connection reset"))

	result, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userID), suite.session.ID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to save signup")
	assert.False(suite.T(), apperrors.IsCapacityExceeded(err))
}

// Leave

func (suite *RosterServiceTestSuite) TestLeave_NotSignedUpIsSuccess() {
	userID := uuid.New()
	for i := 0; i < 2; i++ {
		suite.expectSession()
		suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(nil, gorm.ErrRecordNotFound)

		result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "You have left this game.", result.Success)
		assert.Nil(suite.T(), result.Meta)
	}
}

func (suite *RosterServiceTestSuite) TestLeave_ReserveDoesNotPromote() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().
		Delete(suite.ctx, suite.session.ID, userID).
		Return(suite.signup(userID, models.SignupStatusReserve), nil)

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left this game.", result.Success)
	require.NotNil(suite.T(), result.Meta)
	assert.Equal(suite.T(), models.SignupStatusReserve, *result.Meta.PreviousStatus)
	assert.Equal(suite.T(), models.SignupStatusNone, result.Meta.TargetStatus)
	assert.Nil(suite.T(), result.Meta.PromotedUserID)
}

func (suite *RosterServiceTestSuite) TestLeave_ActivePromotesOldestReserve() {
	userID := uuid.New()
	waiting := suite.signup(uuid.New(), models.SignupStatusReserve)
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userID).Return(waiting, nil)
	suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, waiting.ID, suite.session.MaxPlayers, suite.now).Return(true, nil)
	suite.expectName(waiting.UserID, "Jordan")

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left this game. Promoted Jordan from the standby list to the active roster.", result.Success)
	require.NotNil(suite.T(), result.Meta.PromotedUserID)
	assert.Equal(suite.T(), waiting.UserID, *result.Meta.PromotedUserID)
	assert.Equal(suite.T(), "Jordan", *result.Meta.PromotedName)
}

func (suite *RosterServiceTestSuite) TestLeave_PromotionFailureStillSucceeds() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(0), errors.New("timeout"))

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left this game.", result.Success)
	assert.Nil(suite.T(), result.Meta.PromotedUserID)
}

// Promote-Next

func (suite *RosterServiceTestSuite) TestPromoteNext_NoReserveWaiting() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left this game.", result.Success)
}

func (suite *RosterServiceTestSuite) TestPromoteNext_RosterStillFull() {
	userID := uuid.New()
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(2), nil)

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.Meta.PromotedUserID)
}

func (suite *RosterServiceTestSuite) TestPromoteNext_RetriesAfterLostRace() {
	userID := uuid.New()
	first := suite.signup(uuid.New(), models.SignupStatusReserve)
	first.ID = 10
	second := suite.signup(uuid.New(), models.SignupStatusReserve)
	second.ID = 11

	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	gomock.InOrder(
		suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil),
		suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userID).Return(first, nil),
		suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, uint64(10), suite.session.MaxPlayers, suite.now).Return(false, nil),
		suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil),
		suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userID).Return(second, nil),
		suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, uint64(11), suite.session.MaxPlayers, suite.now).Return(true, nil),
	)
	suite.expectName(second.UserID, "")

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left this game. Promoted the next player from the standby list.", result.Success)
	assert.Equal(suite.T(), second.UserID, *result.Meta.PromotedUserID)
	assert.Nil(suite.T(), result.Meta.PromotedName)
}

func (suite *RosterServiceTestSuite) TestPromoteNext_GivesUpAfterRepeatedRaces() {
	userID := uuid.New()
	waiting := suite.signup(uuid.New(), models.SignupStatusReserve)
	suite.expectSession()
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userID).Return(suite.signup(userID, models.SignupStatusActive), nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil).Times(3)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userID).Return(waiting, nil).Times(3)
	suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, waiting.ID, suite.session.MaxPlayers, suite.now).Return(false, nil).Times(3)

	result, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userID), suite.session.ID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.Meta.PromotedUserID)
}

// AdminSetStatus

func (suite *RosterServiceTestSuite) TestAdminSetStatus_RequiresManager() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRolePlayer)

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotRosterManager)
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_NonMemberCaller() {
	suite.expectSession()
	suite.mockMemberRepo.EXPECT().GetMembership(suite.ctx, suite.teamID, suite.adminID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, uuid.New(), models.SignupStatusActive)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotRosterManager)
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_InvalidTarget() {
	_, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, uuid.New(), models.SignupStatus("bench"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSignupStatus)
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_SignupNotFound() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSignupNotFound)
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_AlreadyUpToDate() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleOwner)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusActive), nil)

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Roster already up to date.", result.Success)
	assert.Nil(suite.T(), result.Meta)
}

// Scenario B: promoting into a full roster fails and changes nothing
func (suite *RosterServiceTestSuite) TestAdminSetStatus_PromoteIntoFullRoster() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusReserve), nil)
	suite.expectName(playerID, "Bo")
	suite.mockSignupRepo.EXPECT().
		ActivateWithinCapacity(suite.ctx, suite.session.ID, playerID, suite.session.MaxPlayers, suite.now).
		Return(repository.ErrCapacityReached)

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsCapacityExceeded(err))
	assert.EqualError(suite.T(), err, "Active roster is full. Remove a player before promoting.")
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_PromoteWithRoom() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusReserve), nil)
	suite.expectName(playerID, "Bo")
	suite.mockSignupRepo.EXPECT().
		ActivateWithinCapacity(suite.ctx, suite.session.ID, playerID, suite.session.MaxPlayers, suite.now).
		Return(nil)

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player moved to the active roster.", result.Success)
	assert.Equal(suite.T(), "Bo", result.Meta.TargetName)
	assert.Equal(suite.T(), models.SignupStatusReserve, *result.Meta.PreviousStatus)
	assert.Equal(suite.T(), models.SignupStatusActive, result.Meta.TargetStatus)
}

// Scenario E: demoting an active player promotes the waiting reserve
func (suite *RosterServiceTestSuite) TestAdminSetStatus_DemotePromotesWaitingReserve() {
	playerID := uuid.New()
	waiting := suite.signup(uuid.New(), models.SignupStatusReserve)
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusActive), nil)
	suite.expectName(playerID, "Alex")
	suite.mockSignupRepo.EXPECT().UpdateStatus(suite.ctx, suite.session.ID, playerID, models.SignupStatusReserve).Return(nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &playerID).Return(waiting, nil)
	suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, waiting.ID, suite.session.MaxPlayers, suite.now).Return(true, nil)
	suite.expectName(waiting.UserID, "Sam")

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusReserve)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player moved to the standby list. Promoted Sam from the standby list to the active roster.", result.Success)
	assert.Equal(suite.T(), "Alex", result.Meta.TargetName)
	assert.Equal(suite.T(), models.SignupStatusReserve, result.Meta.TargetStatus)
	assert.Equal(suite.T(), waiting.UserID, *result.Meta.PromotedUserID)
	assert.Equal(suite.T(), "Sam", *result.Meta.PromotedName)
}

func (suite *RosterServiceTestSuite) TestAdminSetStatus_DemoteWithoutReserve() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusActive), nil)
	suite.expectName(playerID, "")
	suite.mockSignupRepo.EXPECT().UpdateStatus(suite.ctx, suite.session.ID, playerID, models.SignupStatusReserve).Return(nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &playerID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.AdminSetStatus(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusReserve)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player moved to the standby list.", result.Success)
	assert.Equal(suite.T(), "This player", result.Meta.TargetName)
	assert.Nil(suite.T(), result.Meta.PromotedUserID)
}

// AdminAdd

func (suite *RosterServiceTestSuite) TestAdminAdd_PlayerNotOnTeam() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleOwner)
	suite.mockMemberRepo.EXPECT().GetMembership(suite.ctx, suite.teamID, playerID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsNotOnTeam(err))
}

func (suite *RosterServiceTestSuite) TestAdminAdd_ActiveWithRoom() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.expectMember(playerID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)
	suite.expectName(playerID, "Kim")
	suite.mockSignupRepo.EXPECT().
		InsertWithinCapacity(suite.ctx, gomock.Any(), suite.session.MaxPlayers).
		DoAndReturn(func(_ context.Context, signup *models.GameSignup, _ int) error {
			assert.Equal(suite.T(), playerID, signup.UserID)
			assert.Equal(suite.T(), models.SignupStatusActive, signup.Status)
			return nil
		})

	result, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player added to the active roster.", result.Success)
	assert.Equal(suite.T(), "Kim", result.Meta.TargetName)
	assert.Nil(suite.T(), result.Meta.PreviousStatus)
}

func (suite *RosterServiceTestSuite) TestAdminAdd_ReserveWhenFull() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.expectMember(playerID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)
	suite.expectName(playerID, "Kim")
	suite.mockSignupRepo.EXPECT().InsertWithinCapacity(suite.ctx, gomock.Any(), suite.session.MaxPlayers).Return(nil)

	result, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusReserve)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player added to the standby list.", result.Success)
}

func (suite *RosterServiceTestSuite) TestAdminAdd_ActiveWhenFull() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.expectMember(playerID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)
	suite.expectName(playerID, "Kim")
	suite.mockSignupRepo.EXPECT().InsertWithinCapacity(suite.ctx, gomock.Any(), suite.session.MaxPlayers).Return(repository.ErrCapacityReached)

	result, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.Nil(suite.T(), result)
	assert.EqualError(suite.T(), err, "Active roster is full. Move someone to the standby list first.")
	assert.True(suite.T(), apperrors.IsCapacityExceeded(err))
}

func (suite *RosterServiceTestSuite) TestAdminAdd_ExistingSignupIsMoved() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.expectMember(playerID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusReserve), nil)
	suite.expectName(playerID, "Kim")
	suite.mockSignupRepo.EXPECT().
		ActivateWithinCapacity(suite.ctx, suite.session.ID, playerID, suite.session.MaxPlayers, suite.now).
		Return(nil)

	result, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player moved to the active roster.", result.Success)
}

func (suite *RosterServiceTestSuite) TestAdminAdd_ConcurrentDuplicate() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.expectMember(playerID, models.TeamRolePlayer)
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)
	suite.expectName(playerID, "Kim")
	suite.mockSignupRepo.EXPECT().InsertWithinCapacity(suite.ctx, gomock.Any(), suite.session.MaxPlayers).Return(gorm.ErrDuplicatedKey)

	_, err := suite.rosterService.AdminAdd(suite.ctx, suite.admin, suite.session.ID, playerID, models.SignupStatusActive)

	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// AdminRemove

// Scenario C: removing a player without a signup is a no-op success
func (suite *RosterServiceTestSuite) TestAdminRemove_NotOnRoster() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, playerID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.rosterService.AdminRemove(suite.ctx, suite.admin, suite.session.ID, playerID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player was not on this roster.", result.Success)
	assert.Nil(suite.T(), result.Meta)
}

func (suite *RosterServiceTestSuite) TestAdminRemove_ActivePromotesNext() {
	playerID := uuid.New()
	waiting := suite.signup(uuid.New(), models.SignupStatusReserve)
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusActive), nil)
	suite.expectName(playerID, "Riley")
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(1), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, nil).Return(waiting, nil)
	suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, waiting.ID, suite.session.MaxPlayers, suite.now).Return(true, nil)
	suite.expectName(waiting.UserID, "Sam")

	result, err := suite.rosterService.AdminRemove(suite.ctx, suite.admin, suite.session.ID, playerID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Riley removed from this game. Promoted Sam from the standby list to the active roster.", result.Success)
	assert.Equal(suite.T(), models.SignupStatusActive, *result.Meta.PreviousStatus)
	assert.Equal(suite.T(), models.SignupStatusNone, result.Meta.TargetStatus)
}

func (suite *RosterServiceTestSuite) TestAdminRemove_NameLookupFailureUsesFallback() {
	playerID := uuid.New()
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRoleAdmin)
	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, playerID).Return(suite.signup(playerID, models.SignupStatusReserve), nil)
	suite.mockProfileRepo.EXPECT().GetNames(suite.ctx, []uuid.UUID{playerID}).Return(nil, errors.New("profiles unavailable"))

	result, err := suite.rosterService.AdminRemove(suite.ctx, suite.admin, suite.session.ID, playerID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "This player removed from this game.", result.Success)
}

func (suite *RosterServiceTestSuite) TestAdminRemove_RequiresManager() {
	suite.expectSession()
	suite.expectMember(suite.adminID, models.TeamRolePlayer)

	_, err := suite.rosterService.AdminRemove(suite.ctx, suite.admin, suite.session.ID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotRosterManager)
}

// Scenario A: with one slot, a second joiner waits and is promoted when the
// first leaves
func (suite *RosterServiceTestSuite) TestScenario_SingleSlotHandOver() {
	suite.session.MaxPlayers = 1
	userA, userB := uuid.New(), uuid.New()
	var stored []*models.GameSignup

	suite.mockSessionRepo.EXPECT().GetByID(suite.ctx, suite.session.ID).Return(suite.session, nil).AnyTimes()
	suite.mockMemberRepo.EXPECT().GetMembership(suite.ctx, suite.teamID, gomock.Any()).
		Return(&models.TeamMember{TeamID: suite.teamID, Role: models.TeamRolePlayer}, nil).AnyTimes()
	suite.mockSignupRepo.EXPECT().Get(suite.ctx, suite.session.ID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(2)
	suite.mockSignupRepo.EXPECT().InsertOrWaitlist(suite.ctx, gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, signup *models.GameSignup, capacity int) error {
			active := 0
			for _, s := range stored {
				if s.Status == models.SignupStatusActive {
					active++
				}
			}
			if active >= capacity {
				signup.Status = models.SignupStatusReserve
				signup.PromotedAt = nil
			}
			signup.ID = uint64(len(stored) + 1)
			stored = append(stored, signup)
			return nil
		}).Times(2)

	resultA, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userA), suite.session.ID, models.SignupStatusActive)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SignupStatusActive, resultA.Meta.TargetStatus)

	resultB, err := suite.rosterService.Join(suite.ctx, auth.NewIdentity(userB), suite.session.ID, models.SignupStatusActive)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SignupStatusReserve, resultB.Meta.TargetStatus)

	suite.mockSignupRepo.EXPECT().Delete(suite.ctx, suite.session.ID, userA).Return(stored[0], nil)
	suite.mockSignupRepo.EXPECT().CountByStatus(suite.ctx, suite.session.ID, models.SignupStatusActive).Return(int64(0), nil)
	suite.mockSignupRepo.EXPECT().OldestReserve(suite.ctx, suite.session.ID, &userA).Return(stored[1], nil)
	suite.mockSignupRepo.EXPECT().PromoteIfReserve(suite.ctx, stored[1].ID, 1, suite.now).Return(true, nil)
	suite.expectName(userB, "B")

	resultLeave, err := suite.rosterService.Leave(suite.ctx, auth.NewIdentity(userA), suite.session.ID)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resultLeave.Meta.PromotedUserID)
	assert.Equal(suite.T(), userB, *resultLeave.Meta.PromotedUserID)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
