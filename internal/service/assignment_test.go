package service_test

import (
	"testing"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"
	"shift-planning-backend/internal/service"
	"shift-planning-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentServiceTestSuite tests the AssignmentService against a real database
type AssignmentServiceTestSuite struct {
	suite.Suite
	baseTestSuite     *testutils.BaseTestSuite
	assignmentRepo    *repository.AssignmentRepository
	teamRepo          *repository.TeamRepository
	agentRepo         *repository.AgentRepository
	planRepo          *repository.RotationPlanRepository
	assignmentService *service.AssignmentService
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.assignmentRepo = repository.NewAssignmentRepository(db)
	suite.teamRepo = repository.NewTeamRepository(db)
	suite.agentRepo = repository.NewAgentRepository(db)
	suite.planRepo = repository.NewRotationPlanRepository(db)
	suite.assignmentService = service.NewAssignmentService(
		suite.assignmentRepo, suite.teamRepo, suite.agentRepo, suite.planRepo, validator.New())
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedPosition persists the department/team/function chain and returns a position
func (suite *AssignmentServiceTestSuite) seedPosition() *models.TeamPosition {
	department := testutils.NewDepartmentFactory().Create()
	suite.Require().NoError(repository.NewDepartmentRepository(suite.baseTestSuite.DB).Create(department))

	function := testutils.NewFunctionFactory().Create()
	suite.Require().NoError(repository.NewFunctionRepository(suite.baseTestSuite.DB).Create(function))

	teams := testutils.NewTeamFactory()
	team := teams.Create(department.ID)
	suite.Require().NoError(suite.teamRepo.Create(team))

	position := teams.CreatePosition(team.ID, function.ID)
	suite.Require().NoError(suite.teamRepo.CreatePosition(position))
	return position
}

// seedAgent persists an agent
func (suite *AssignmentServiceTestSuite) seedAgent() *models.Agent {
	agent := testutils.NewAgentFactory().Create()
	suite.Require().NoError(suite.agentRepo.Create(agent))
	return agent
}

// seedPlan persists a rotation plan; withPeriod controls whether it owns a period
func (suite *AssignmentServiceTestSuite) seedPlan(withPeriod bool) *models.DailyRotationPlan {
	scheduleType := testutils.NewScheduleTypeFactory().Create()
	suite.Require().NoError(repository.NewScheduleTypeRepository(suite.baseTestSuite.DB).Create(scheduleType))

	plans := testutils.NewRotationPlanFactory()
	plan := plans.Create(scheduleType.ID)
	suite.Require().NoError(suite.planRepo.Create(plan))
	if withPeriod {
		period := plans.CreatePeriod(plan.ID, testutils.Day(2026, time.January, 1), testutils.Day(2026, time.December, 31))
		suite.Require().NoError(suite.planRepo.CreatePeriod(period))
	}
	return plan
}

func (suite *AssignmentServiceTestSuite) TestCreateAgentAssignment_Success() {
	position := suite.seedPosition()
	agent := suite.seedAgent()

	resp, err := suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})

	suite.NoError(err)
	suite.Equal(position.ID, resp.TeamPositionID)
	suite.Equal(agent.ID, resp.AgentID)
	suite.Equal("2026-02-01", resp.StartDate)
	suite.Equal("2026-02-28", resp.EndDate)
}

func (suite *AssignmentServiceTestSuite) TestCreateAgentAssignment_UnknownPosition() {
	agent := suite.seedAgent()

	_, err := suite.assignmentService.CreateAgentAssignment(uuid.New(), &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})

	suite.ErrorIs(err, apperrors.ErrTeamPositionNotFound)
}

func (suite *AssignmentServiceTestSuite) TestCreateAgentAssignment_RejectsOverlapOnSamePosition() {
	position := suite.seedPosition()
	first := suite.seedAgent()
	second := suite.seedAgent()

	_, err := suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   first.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	_, err = suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   second.ID,
		StartDate: testutils.Day(2026, time.February, 28),
		EndDate:   testutils.Day(2026, time.March, 31),
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func (suite *AssignmentServiceTestSuite) TestCreateAgentAssignment_OtherPositionUnaffected() {
	positionA := suite.seedPosition()
	positionB := suite.seedPosition()
	agent := suite.seedAgent()

	_, err := suite.assignmentService.CreateAgentAssignment(positionA.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	// The overlap scope is per position, not global
	_, err = suite.assignmentService.CreateAgentAssignment(positionB.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})

	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestUpdateAgentAssignment_IgnoresOwnRange() {
	position := suite.seedPosition()
	agent := suite.seedAgent()

	created, err := suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	updated, err := suite.assignmentService.UpdateAgentAssignment(created.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 15),
		EndDate:   testutils.Day(2026, time.March, 15),
	})

	suite.NoError(err)
	suite.Equal("2026-02-15", updated.StartDate)
	suite.Equal("2026-03-15", updated.EndDate)
}

func (suite *AssignmentServiceTestSuite) TestGetCurrentAgentAssignment() {
	position := suite.seedPosition()
	past := suite.seedAgent()
	current := suite.seedAgent()

	_, err := suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   past.ID,
		StartDate: testutils.Day(2026, time.January, 1),
		EndDate:   testutils.Day(2026, time.January, 31),
	})
	suite.Require().NoError(err)
	_, err = suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   current.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	resp, err := suite.assignmentService.GetCurrentAgentAssignment(position.ID, testutils.Day(2026, time.February, 10))
	suite.Require().NoError(err)
	suite.Equal(current.ID, resp.AgentID)
	suite.True(resp.IsActive)

	_, err = suite.assignmentService.GetCurrentAgentAssignment(position.ID, testutils.Day(2026, time.March, 10))
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentServiceTestSuite) TestCreateRotationAssignment_Success() {
	position := suite.seedPosition()
	plan := suite.seedPlan(true)

	resp, err := suite.assignmentService.CreateRotationAssignment(position.ID, &service.SaveRotationAssignmentRequest{
		DailyRotationPlanID: plan.ID,
		StartDate:           testutils.Day(2026, time.February, 1),
		EndDate:             testutils.Day(2026, time.February, 28),
	})

	suite.NoError(err)
	suite.Equal(plan.ID, resp.DailyRotationPlanID)
	suite.Equal(position.ID, resp.TeamPositionID)
}

func (suite *AssignmentServiceTestSuite) TestCreateRotationAssignment_RejectsEmptyPlan() {
	position := suite.seedPosition()
	emptyPlan := suite.seedPlan(false)

	_, err := suite.assignmentService.CreateRotationAssignment(position.ID, &service.SaveRotationAssignmentRequest{
		DailyRotationPlanID: emptyPlan.ID,
		StartDate:           testutils.Day(2026, time.February, 1),
		EndDate:             testutils.Day(2026, time.February, 28),
	})

	suite.Error(err)
	suite.True(apperrors.IsUnassignableReference(err))
	suite.Contains(err.Error(), emptyPlan.Designation)
}

func (suite *AssignmentServiceTestSuite) TestCreateRotationAssignment_RejectsOverlap() {
	position := suite.seedPosition()
	plan := suite.seedPlan(true)

	_, err := suite.assignmentService.CreateRotationAssignment(position.ID, &service.SaveRotationAssignmentRequest{
		DailyRotationPlanID: plan.ID,
		StartDate:           testutils.Day(2026, time.February, 1),
		EndDate:             testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	_, err = suite.assignmentService.CreateRotationAssignment(position.ID, &service.SaveRotationAssignmentRequest{
		DailyRotationPlanID: plan.ID,
		StartDate:           testutils.Day(2026, time.February, 14),
		EndDate:             testutils.Day(2026, time.March, 14),
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func (suite *AssignmentServiceTestSuite) TestGetCurrentRotationAssignment() {
	position := suite.seedPosition()
	plan := suite.seedPlan(true)

	_, err := suite.assignmentService.CreateRotationAssignment(position.ID, &service.SaveRotationAssignmentRequest{
		DailyRotationPlanID: plan.ID,
		StartDate:           testutils.Day(2026, time.February, 1),
		EndDate:             testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	resp, err := suite.assignmentService.GetCurrentRotationAssignment(position.ID, testutils.Day(2026, time.February, 28))
	suite.Require().NoError(err)
	suite.Equal(plan.ID, resp.DailyRotationPlanID)

	_, err = suite.assignmentService.GetCurrentRotationAssignment(position.ID, testutils.Day(2026, time.March, 1))
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentServiceTestSuite) TestDeleteAgentAssignment() {
	position := suite.seedPosition()
	agent := suite.seedAgent()

	created, err := suite.assignmentService.CreateAgentAssignment(position.ID, &service.SaveAgentAssignmentRequest{
		AgentID:   agent.ID,
		StartDate: testutils.Day(2026, time.February, 1),
		EndDate:   testutils.Day(2026, time.February, 28),
	})
	suite.Require().NoError(err)

	suite.NoError(suite.assignmentService.DeleteAgentAssignment(created.ID))

	assignments, err := suite.assignmentService.GetAgentAssignments(position.ID)
	suite.Require().NoError(err)
	suite.Empty(assignments)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
