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

// RotationPlanServiceTestSuite tests the RotationPlanService against a real database
type RotationPlanServiceTestSuite struct {
	suite.Suite
	baseTestSuite    *testutils.BaseTestSuite
	planRepo         *repository.RotationPlanRepository
	scheduleTypeRepo *repository.ScheduleTypeRepository
	planService      *service.RotationPlanService
	scheduleTypes    *testutils.ScheduleTypeFactory
	plans            *testutils.RotationPlanFactory
}

// SetupSuite runs before all tests in the suite
func (suite *RotationPlanServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.planRepo = repository.NewRotationPlanRepository(suite.baseTestSuite.DB)
	suite.scheduleTypeRepo = repository.NewScheduleTypeRepository(suite.baseTestSuite.DB)
	suite.planService = service.NewRotationPlanService(suite.planRepo, suite.scheduleTypeRepo, validator.New())
	suite.scheduleTypes = testutils.NewScheduleTypeFactory()
	suite.plans = testutils.NewRotationPlanFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *RotationPlanServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RotationPlanServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RotationPlanServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedPlan persists a schedule type and a rotation plan under it
func (suite *RotationPlanServiceTestSuite) seedPlan() *models.DailyRotationPlan {
	scheduleType := suite.scheduleTypes.Create()
	suite.Require().NoError(suite.scheduleTypeRepo.Create(scheduleType))

	plan := suite.plans.Create(scheduleType.ID)
	suite.Require().NoError(suite.planRepo.Create(plan))
	return plan
}

func (suite *RotationPlanServiceTestSuite) TestCreate_Success() {
	scheduleType := suite.scheduleTypes.Create()
	suite.Require().NoError(suite.scheduleTypeRepo.Create(scheduleType))

	resp, err := suite.planService.Create(&service.CreateRotationPlanRequest{
		Designation:    "Morning rotation",
		Description:    "Front desk mornings",
		ScheduleTypeID: scheduleType.ID,
	})

	suite.NoError(err)
	suite.NotNil(resp)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("Morning rotation", resp.Designation)
	suite.Equal(scheduleType.ID, resp.ScheduleTypeID)
	suite.False(resp.HasPeriods)
}

func (suite *RotationPlanServiceTestSuite) TestCreate_UnknownScheduleType() {
	_, err := suite.planService.Create(&service.CreateRotationPlanRequest{
		Designation:    "Orphan plan",
		ScheduleTypeID: uuid.New(),
	})

	suite.ErrorIs(err, apperrors.ErrScheduleTypeNotFound)
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_DayShift() {
	plan := suite.seedPlan()

	resp, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 8),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.NoError(err)
	suite.NotNil(resp)
	suite.False(resp.IsNightShift)
	suite.InDelta(8.0, resp.DurationHours, 1e-9)
	suite.Equal("2026-03-02", resp.StartDate)
	suite.Equal("2026-03-08", resp.EndDate)
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_NightShift() {
	plan := suite.seedPlan()

	resp, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 8),
		StartTime: "22:00",
		EndTime:   "06:00",
	})

	suite.NoError(err)
	suite.True(resp.IsNightShift)
	suite.InDelta(8.0, resp.DurationHours, 1e-9)
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_IllegalInvertedWindow() {
	plan := suite.seedPlan()

	// Inverted, but starts before 16:00: not an acceptable night shift
	_, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 8),
		StartTime: "14:00",
		EndTime:   "10:00",
	})

	suite.Error(err)
	suite.True(apperrors.IsMalformedRange(err))
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_EndDateBeforeStartDate() {
	plan := suite.seedPlan()

	_, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 8),
		EndDate:   testutils.Day(2026, time.March, 2),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.Error(err)
	suite.True(apperrors.IsMalformedRange(err))
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_RejectsOverlap() {
	plan := suite.seedPlan()

	_, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 15),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	// Shares 2026-03-15 with the existing period
	_, err = suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 15),
		EndDate:   testutils.Day(2026, time.March, 31),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func (suite *RotationPlanServiceTestSuite) TestCreatePeriod_AllowsAdjacentDays() {
	plan := suite.seedPlan()

	_, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 15),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	_, err = suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 16),
		EndDate:   testutils.Day(2026, time.March, 31),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.NoError(err)
}

func (suite *RotationPlanServiceTestSuite) TestGetAll_ReportsHasPeriods() {
	withPeriods := suite.seedPlan()
	empty := suite.seedPlan()

	_, err := suite.planService.CreatePeriod(withPeriods.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 8),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	list, err := suite.planService.GetAll(1, 20)
	suite.Require().NoError(err)
	suite.Require().Len(list.Plans, 2)

	byID := make(map[uuid.UUID]service.RotationPlanResponse, len(list.Plans))
	for _, p := range list.Plans {
		byID[p.ID] = p
	}
	suite.True(byID[withPeriods.ID].HasPeriods)
	suite.False(byID[empty.ID].HasPeriods)
}

func (suite *RotationPlanServiceTestSuite) TestUpdatePeriod_IgnoresOwnRange() {
	plan := suite.seedPlan()

	created, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 15),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	// New range intersects the stored one; the period must not conflict with itself
	updated, err := suite.planService.UpdatePeriod(created.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 5),
		EndDate:   testutils.Day(2026, time.March, 20),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.NoError(err)
	suite.Equal("2026-03-05", updated.StartDate)
	suite.Equal("2026-03-20", updated.EndDate)
}

func (suite *RotationPlanServiceTestSuite) TestUpdatePeriod_StillChecksSiblings() {
	plan := suite.seedPlan()

	_, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 2),
		EndDate:   testutils.Day(2026, time.March, 10),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	second, err := suite.planService.CreatePeriod(plan.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 11),
		EndDate:   testutils.Day(2026, time.March, 20),
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	suite.Require().NoError(err)

	_, err = suite.planService.UpdatePeriod(second.ID, &service.SaveRotationPeriodRequest{
		StartDate: testutils.Day(2026, time.March, 8),
		EndDate:   testutils.Day(2026, time.March, 20),
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func (suite *RotationPlanServiceTestSuite) TestDelete_BlockedWhileAssignedToWeekday() {
	plan := suite.seedPlan()
	period := suite.plans.CreatePeriod(plan.ID, testutils.Day(2026, time.March, 2), testutils.Day(2026, time.March, 8))
	suite.Require().NoError(suite.planRepo.CreatePeriod(period))

	schedules := testutils.NewShiftScheduleFactory()
	scheduleRepo := repository.NewShiftScheduleRepository(suite.baseTestSuite.DB)

	schedule := schedules.Create()
	suite.Require().NoError(scheduleRepo.Create(schedule))
	schedulePeriod := schedules.CreatePeriod(schedule.ID, testutils.Day(2026, time.March, 2), testutils.Day(2026, time.March, 29))
	suite.Require().NoError(scheduleRepo.CreatePeriod(schedulePeriod))
	week := schedules.CreateWeek(schedulePeriod.ID, 1)
	suite.Require().NoError(scheduleRepo.CreateWeek(week))
	suite.Require().NoError(scheduleRepo.CreateDailyPlan(&models.ShiftScheduleDailyPlan{
		WeekID:              week.ID,
		Weekday:             models.WeekdayMonday,
		DailyRotationPlanID: plan.ID,
	}))

	err := suite.planService.Delete(plan.ID)

	suite.Error(err)
	suite.True(apperrors.IsUnassignableReference(err))
}

func (suite *RotationPlanServiceTestSuite) TestDelete_Success() {
	plan := suite.seedPlan()

	suite.NoError(suite.planService.Delete(plan.ID))

	_, err := suite.planService.GetByID(plan.ID)
	suite.ErrorIs(err, apperrors.ErrRotationPlanNotFound)
}

func TestRotationPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotationPlanServiceTestSuite))
}
