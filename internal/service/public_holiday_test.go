package service_test

import (
	"testing"
	"time"

	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"
	"shift-planning-backend/internal/service"
	"shift-planning-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PublicHolidayServiceTestSuite tests the PublicHolidayService against a real database
type PublicHolidayServiceTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	holidayService *service.PublicHolidayService
}

// SetupSuite runs before all tests in the suite
func (suite *PublicHolidayServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	repo := repository.NewPublicHolidayRepository(suite.baseTestSuite.DB)
	suite.holidayService = service.NewPublicHolidayService(repo, validator.New())
}

// TearDownSuite runs after all tests in the suite
func (suite *PublicHolidayServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PublicHolidayServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PublicHolidayServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PublicHolidayServiceTestSuite) TestCreate_Success() {
	resp, err := suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Bastille Day",
		Date:        testutils.Day(2026, time.July, 14),
	})

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Equal("Bastille Day", resp.Designation)
	suite.Equal("2026-07-14", resp.Date)
}

func (suite *PublicHolidayServiceTestSuite) TestCreate_RejectsDuplicateDate() {
	_, err := suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Bastille Day",
		Date:        testutils.Day(2026, time.July, 14),
	})
	suite.Require().NoError(err)

	// Same calendar day, different time of day
	_, err = suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Fête nationale",
		Date:        testutils.Day(2026, time.July, 14).Add(9 * time.Hour),
	})

	suite.Error(err)
	suite.True(apperrors.IsDuplicateKey(err))
}

func (suite *PublicHolidayServiceTestSuite) TestUpdate_KeepingOwnDate() {
	created, err := suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Bastille Day",
		Date:        testutils.Day(2026, time.July, 14),
	})
	suite.Require().NoError(err)

	updated, err := suite.holidayService.Update(created.ID, &service.SavePublicHolidayRequest{
		Designation: "Fête nationale",
		Date:        testutils.Day(2026, time.July, 14),
	})

	suite.NoError(err)
	suite.Equal("Fête nationale", updated.Designation)
	suite.Equal("2026-07-14", updated.Date)
}

func (suite *PublicHolidayServiceTestSuite) TestUpdate_RejectsAnotherHolidaysDate() {
	_, err := suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Labour Day",
		Date:        testutils.Day(2026, time.May, 1),
	})
	suite.Require().NoError(err)

	second, err := suite.holidayService.Create(&service.SavePublicHolidayRequest{
		Designation: "Victory Day",
		Date:        testutils.Day(2026, time.May, 8),
	})
	suite.Require().NoError(err)

	_, err = suite.holidayService.Update(second.ID, &service.SavePublicHolidayRequest{
		Designation: "Victory Day",
		Date:        testutils.Day(2026, time.May, 1),
	})

	suite.Error(err)
	suite.True(apperrors.IsDuplicateKey(err))
}

func (suite *PublicHolidayServiceTestSuite) TestUpdate_NotFound() {
	_, err := suite.holidayService.Update(uuid.New(), &service.SavePublicHolidayRequest{
		Designation: "Ghost Day",
		Date:        testutils.Day(2026, time.December, 24),
	})

	suite.ErrorIs(err, apperrors.ErrPublicHolidayNotFound)
}

func TestPublicHolidayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublicHolidayServiceTestSuite))
}
