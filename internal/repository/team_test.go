//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"gotnext-backend/internal/database/models"
	"gotnext-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository, MembershipRepository and ProfileRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TeamRepository
	membershipRepo *MembershipRepository
	profileRepo    *ProfileRepository
	factories      *testutils.FactorySet
	ctx            context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.membershipRepo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.profileRepo = NewProfileRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithOwner tests that the creator becomes the owner
func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	team := suite.factories.Team.Create()

	err := suite.repo.CreateWithOwner(suite.ctx, team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)

	member, err := suite.membershipRepo.GetMembership(suite.ctx, team.ID, team.OwnerID)
	suite.Require().NoError(err)
	suite.Equal(models.TeamRoleOwner, member.Role)
}

// TestCreateDuplicateName tests creating a team with a name the owner already uses
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	ownerID := uuid.New()
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, suite.factories.Team.WithOwner(ownerID)))

	err := suite.repo.CreateWithOwner(suite.ctx, suite.factories.Team.WithOwner(ownerID))
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// another owner may reuse the name
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, suite.factories.Team.Create()))
}

// TestGetByIDs tests name ordering
func (suite *TeamRepositoryTestSuite) TestGetByIDs() {
	zebras := suite.factories.Team.Create()
	zebras.Name = "Zebras"
	ants := suite.factories.Team.Create()
	ants.Name = "Ants"
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, zebras))
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, ants))

	teams, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{zebras.ID, ants.ID})
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("Ants", teams[0].Name)
	suite.Equal("Zebras", teams[1].Name)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMembershipRoles tests role changes and owner counting
func (suite *TeamRepositoryTestSuite) TestMembershipRoles() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, team))

	playerID := uuid.New()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.Member.Create(team.ID, playerID)).Error)

	owners, err := suite.membershipRepo.CountByRole(suite.ctx, team.ID, models.TeamRoleOwner)
	suite.NoError(err)
	suite.Equal(int64(1), owners)

	suite.NoError(suite.membershipRepo.UpdateRole(suite.ctx, team.ID, playerID, models.TeamRoleOwner))
	owners, err = suite.membershipRepo.CountByRole(suite.ctx, team.ID, models.TeamRoleOwner)
	suite.NoError(err)
	suite.Equal(int64(2), owners)

	memberships, err := suite.membershipRepo.GetByUserID(suite.ctx, playerID)
	suite.NoError(err)
	suite.Len(memberships, 1)

	suite.NoError(suite.membershipRepo.Delete(suite.ctx, team.ID, playerID))
	suite.ErrorIs(suite.membershipRepo.Delete(suite.ctx, team.ID, playerID), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.membershipRepo.UpdateRole(suite.ctx, team.ID, playerID, models.TeamRoleAdmin), gorm.ErrRecordNotFound)

	_, err = suite.membershipRepo.GetMembership(suite.ctx, team.ID, playerID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByTeams tests loading the members of several teams at once
func (suite *TeamRepositoryTestSuite) TestListByTeams() {
	first := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, first))
	second := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, second))
	other := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, other))

	playerID := uuid.New()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.Member.Create(first.ID, playerID)).Error)

	members, err := suite.membershipRepo.ListByTeams(suite.ctx, []uuid.UUID{first.ID, second.ID})
	suite.Require().NoError(err)
	suite.Len(members, 3)
	for _, member := range members {
		suite.NotEqual(other.ID, member.TeamID)
	}

	members, err = suite.membershipRepo.ListByTeams(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(members)
}

// TestGetNames tests profile name lookup
func (suite *TeamRepositoryTestSuite) TestGetNames() {
	named := uuid.New()
	blank := uuid.New()
	suite.Require().NoError(suite.profileRepo.Upsert(suite.ctx, suite.factories.Profile.WithName(named, "Alex Morgan")))
	suite.Require().NoError(suite.profileRepo.Upsert(suite.ctx, suite.factories.Profile.WithName(blank, "   ")))

	names, err := suite.profileRepo.GetNames(suite.ctx, []uuid.UUID{named, blank, uuid.New()})
	suite.Require().NoError(err)
	suite.Equal(map[uuid.UUID]string{named: "Alex Morgan"}, names)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
