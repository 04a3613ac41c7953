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
	"github.com/stretchr/testify/suite"
)

// AgentServiceTestSuite tests the AgentService against a real database
type AgentServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	agentRepo     *repository.AgentRepository
	agentService  *service.AgentService
	agents        *testutils.AgentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AgentServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.agentRepo = repository.NewAgentRepository(suite.baseTestSuite.DB)
	suite.agentService = service.NewAgentService(suite.agentRepo, validator.New())
	suite.agents = testutils.NewAgentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AgentServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AgentServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AgentServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AgentServiceTestSuite) TestCreate_Success() {
	resp, err := suite.agentService.Create(&service.CreateAgentRequest{
		Matricule: "B4821",
		FirstName: "Marie",
		LastName:  "Leblanc",
		Grade:     models.GradeMaitrise,
	})

	suite.NoError(err)
	suite.Equal("B4821", resp.Matricule)
	suite.Equal("Marie Leblanc", resp.FullName)
	suite.Equal(models.GradeMaitrise, resp.Grade)
}

func (suite *AgentServiceTestSuite) TestCreate_RejectsMalformedMatricule() {
	for _, matricule := range []string{"b4821", "44821", "B48X1", "B482A"} {
		_, err := suite.agentService.Create(&service.CreateAgentRequest{
			Matricule: matricule,
			FirstName: "Marie",
			LastName:  "Leblanc",
			Grade:     models.GradeAgent,
		})
		suite.Error(err, "matricule %q should be rejected", matricule)
		suite.True(apperrors.IsValidation(err), "matricule %q should fail format validation", matricule)
	}
}

func (suite *AgentServiceTestSuite) TestCreate_RejectsUnknownGrade() {
	_, err := suite.agentService.Create(&service.CreateAgentRequest{
		Matricule: "B4821",
		FirstName: "Marie",
		LastName:  "Leblanc",
		Grade:     models.Grade("director"),
	})

	suite.ErrorIs(err, apperrors.ErrInvalidGrade)
}

func (suite *AgentServiceTestSuite) TestCreate_RejectsDuplicateMatricule() {
	suite.Require().NoError(suite.agentRepo.Create(suite.agents.WithMatricule("C1234")))

	_, err := suite.agentService.Create(&service.CreateAgentRequest{
		Matricule: "C1234",
		FirstName: "Paul",
		LastName:  "Martin",
		Grade:     models.GradeAgent,
	})

	suite.Error(err)
	suite.True(apperrors.IsDuplicateKey(err))
}

func (suite *AgentServiceTestSuite) TestGetByMatricule() {
	agent := suite.agents.WithMatricule("D5678")
	suite.Require().NoError(suite.agentRepo.Create(agent))

	resp, err := suite.agentService.GetByMatricule("D5678")
	suite.Require().NoError(err)
	suite.Equal(agent.ID, resp.ID)

	_, err = suite.agentService.GetByMatricule("Z9999")
	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func (suite *AgentServiceTestSuite) TestUpdate_MatriculeIsImmutable() {
	agent := suite.agents.WithMatricule("E1111")
	suite.Require().NoError(suite.agentRepo.Create(agent))

	grade := models.GradeCadre
	departure := testutils.Day(2026, time.September, 30)
	resp, err := suite.agentService.Update(agent.ID, &service.UpdateAgentRequest{
		Grade:         &grade,
		DepartureDate: &departure,
	})

	suite.Require().NoError(err)
	suite.Equal("E1111", resp.Matricule)
	suite.Equal(models.GradeCadre, resp.Grade)
	suite.NotNil(resp.DepartureDate)
}

func (suite *AgentServiceTestSuite) TestDelete_BlockedWhileAssigned() {
	agent := suite.agents.Create()
	suite.Require().NoError(suite.agentRepo.Create(agent))

	// Place the agent on a position
	db := suite.baseTestSuite.DB
	department := testutils.NewDepartmentFactory().Create()
	suite.Require().NoError(repository.NewDepartmentRepository(db).Create(department))
	function := testutils.NewFunctionFactory().Create()
	suite.Require().NoError(repository.NewFunctionRepository(db).Create(function))
	teams := testutils.NewTeamFactory()
	teamRepo := repository.NewTeamRepository(db)
	team := teams.Create(department.ID)
	suite.Require().NoError(teamRepo.Create(team))
	position := teams.CreatePosition(team.ID, function.ID)
	suite.Require().NoError(teamRepo.CreatePosition(position))

	assignmentRepo := repository.NewAssignmentRepository(db)
	suite.Require().NoError(assignmentRepo.CreateAgentAssignment(&models.AgentAssignment{
		TeamPositionID: position.ID,
		AgentID:        agent.ID,
		StartDate:      testutils.Day(2026, time.February, 1),
		EndDate:        testutils.Day(2026, time.February, 28),
	}))

	err := suite.agentService.Delete(agent.ID)

	suite.Error(err)
	suite.True(apperrors.IsUnassignableReference(err))
	suite.Contains(err.Error(), agent.Matricule)
}

func (suite *AgentServiceTestSuite) TestDelete_Success() {
	agent := suite.agents.Create()
	suite.Require().NoError(suite.agentRepo.Create(agent))

	suite.NoError(suite.agentService.Delete(agent.ID))

	_, err := suite.agentService.GetByID(agent.ID)
	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func TestAgentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgentServiceTestSuite))
}
