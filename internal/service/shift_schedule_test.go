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

// ShiftScheduleServiceTestSuite tests the ShiftScheduleService against a real database
type ShiftScheduleServiceTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	scheduleRepo    *repository.ShiftScheduleRepository
	planRepo        *repository.RotationPlanRepository
	scheduleService *service.ShiftScheduleService
	schedules       *testutils.ShiftScheduleFactory
	scheduleTypes   *testutils.ScheduleTypeFactory
	plans           *testutils.RotationPlanFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftScheduleServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.scheduleRepo = repository.NewShiftScheduleRepository(suite.baseTestSuite.DB)
	suite.planRepo = repository.NewRotationPlanRepository(suite.baseTestSuite.DB)
	suite.scheduleService = service.NewShiftScheduleService(suite.scheduleRepo, suite.planRepo, validator.New())
	suite.schedules = testutils.NewShiftScheduleFactory()
	suite.scheduleTypes = testutils.NewScheduleTypeFactory()
	suite.plans = testutils.NewRotationPlanFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftScheduleServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftScheduleServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftScheduleServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedPeriod persists a schedule with one period covering March 2026
func (suite *ShiftScheduleServiceTestSuite) seedPeriod() (*models.ShiftSchedule, *models.ShiftSchedulePeriod) {
	schedule := suite.schedules.Create()
	suite.Require().NoError(suite.scheduleRepo.Create(schedule))

	period := suite.schedules.CreatePeriod(schedule.ID, testutils.Day(2026, time.March, 2), testutils.Day(2026, time.March, 29))
	suite.Require().NoError(suite.scheduleRepo.CreatePeriod(period))
	return schedule, period
}

// seedPlanWithPeriod persists a rotation plan that owns one rotation period,
// making it assignable to weekdays
func (suite *ShiftScheduleServiceTestSuite) seedPlanWithPeriod() *models.DailyRotationPlan {
	scheduleType := suite.scheduleTypes.Create()
	suite.Require().NoError(repository.NewScheduleTypeRepository(suite.baseTestSuite.DB).Create(scheduleType))

	plan := suite.plans.Create(scheduleType.ID)
	suite.Require().NoError(suite.planRepo.Create(plan))
	suite.Require().NoError(suite.planRepo.CreatePeriod(
		suite.plans.CreatePeriod(plan.ID, testutils.Day(2026, time.January, 1), testutils.Day(2026, time.December, 31))))
	return plan
}

func (suite *ShiftScheduleServiceTestSuite) TestCreate_DefaultsBreakTimes() {
	resp, err := suite.scheduleService.Create(&service.CreateShiftScheduleRequest{
		Name: "Reception roster",
		Kind: models.ScheduleKindDay,
	})

	suite.NoError(err)
	suite.Equal(2, resp.BreakTimes)
	suite.Equal(models.ScheduleKindDay, resp.Kind)
}

func (suite *ShiftScheduleServiceTestSuite) TestCreate_InvalidKind() {
	_, err := suite.scheduleService.Create(&service.CreateShiftScheduleRequest{
		Name: "Broken roster",
		Kind: models.ScheduleKind("weekly"),
	})

	suite.ErrorIs(err, apperrors.ErrInvalidScheduleKind)
}

func (suite *ShiftScheduleServiceTestSuite) TestCreatePeriod_RejectsOverlap() {
	_, period := suite.seedPeriod()

	_, err := suite.scheduleService.CreatePeriod(period.ShiftScheduleID, &service.SaveSchedulePeriodRequest{
		StartDate: testutils.Day(2026, time.March, 29),
		EndDate:   testutils.Day(2026, time.April, 26),
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func (suite *ShiftScheduleServiceTestSuite) TestCreateWeek_NumbersSequentially() {
	_, period := suite.seedPeriod()

	first, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)
	second, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)
	third, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	suite.Equal(1, first.WeekNumber)
	suite.Equal(2, second.WeekNumber)
	suite.Equal(3, third.WeekNumber)
}

func (suite *ShiftScheduleServiceTestSuite) TestDeleteWeek_RenumbersRemainder() {
	_, period := suite.seedPeriod()

	week1, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)
	week2, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)
	week3, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.scheduleService.DeleteWeek(week2.ID))

	remaining, err := suite.scheduleService.GetWeeks(period.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 2)
	// The sequence closes the gap: former week 3 becomes week 2
	suite.Equal(week1.ID, remaining[0].ID)
	suite.Equal(1, remaining[0].WeekNumber)
	suite.Equal(week3.ID, remaining[1].ID)
	suite.Equal(2, remaining[1].WeekNumber)
}

func (suite *ShiftScheduleServiceTestSuite) TestDeleteWeek_NotFound() {
	err := suite.scheduleService.DeleteWeek(uuid.New())
	suite.ErrorIs(err, apperrors.ErrShiftScheduleWeekNotFound)
}

func (suite *ShiftScheduleServiceTestSuite) TestAssignDailyPlan_CreatesAndReplaces() {
	_, period := suite.seedPeriod()
	week, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	planA := suite.seedPlanWithPeriod()
	planB := suite.seedPlanWithPeriod()

	created, err := suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
		Weekday:             models.WeekdayMonday,
		DailyRotationPlanID: planA.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(planA.ID, created.DailyRotationPlanID)

	// Assigning the same weekday again replaces the plan instead of duplicating the slot
	replaced, err := suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
		Weekday:             models.WeekdayMonday,
		DailyRotationPlanID: planB.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(created.ID, replaced.ID)
	suite.Equal(planB.ID, replaced.DailyRotationPlanID)

	plans, err := suite.scheduleRepo.GetDailyPlansByWeekID(week.ID)
	suite.Require().NoError(err)
	suite.Len(plans, 1)
}

func (suite *ShiftScheduleServiceTestSuite) TestAssignDailyPlan_RejectsEmptyPlan() {
	_, period := suite.seedPeriod()
	week, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	scheduleType := suite.scheduleTypes.Create()
	suite.Require().NoError(repository.NewScheduleTypeRepository(suite.baseTestSuite.DB).Create(scheduleType))
	emptyPlan := suite.plans.Create(scheduleType.ID)
	suite.Require().NoError(suite.planRepo.Create(emptyPlan))

	_, err = suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
		Weekday:             models.WeekdayTuesday,
		DailyRotationPlanID: emptyPlan.ID,
	})

	suite.Error(err)
	suite.True(apperrors.IsUnassignableReference(err))
	suite.Contains(err.Error(), emptyPlan.Designation)
}

func (suite *ShiftScheduleServiceTestSuite) TestAssignDailyPlan_RejectsInvalidWeekday() {
	_, period := suite.seedPeriod()
	week, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	plan := suite.seedPlanWithPeriod()

	_, err = suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
		Weekday:             models.Weekday(8),
		DailyRotationPlanID: plan.ID,
	})

	suite.Error(err)
}

func (suite *ShiftScheduleServiceTestSuite) TestDuplicateWeek_CopiesDailyPlans() {
	_, period := suite.seedPeriod()
	week, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	plan := suite.seedPlanWithPeriod()
	for _, weekday := range []models.Weekday{models.WeekdayMonday, models.WeekdayWednesday, models.WeekdayFriday} {
		_, err := suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
			Weekday:             weekday,
			DailyRotationPlanID: plan.ID,
		})
		suite.Require().NoError(err)
	}

	duplicate, err := suite.scheduleService.DuplicateWeek(week.ID)

	suite.Require().NoError(err)
	suite.NotEqual(week.ID, duplicate.ID)
	suite.Equal(period.ID, duplicate.PeriodID)
	suite.Equal(2, duplicate.WeekNumber)
	suite.Require().Len(duplicate.DailyPlans, 3)
	for _, dailyPlan := range duplicate.DailyPlans {
		suite.Equal(plan.ID, dailyPlan.DailyRotationPlanID)
	}
}

func (suite *ShiftScheduleServiceTestSuite) TestDuplicatePeriod_CopiesWeeksAndPlans() {
	_, period := suite.seedPeriod()
	week, err := suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)
	_, err = suite.scheduleService.CreateWeek(period.ID)
	suite.Require().NoError(err)

	plan := suite.seedPlanWithPeriod()
	_, err = suite.scheduleService.AssignDailyPlan(week.ID, &service.AssignDailyPlanRequest{
		Weekday:             models.WeekdayMonday,
		DailyRotationPlanID: plan.ID,
	})
	suite.Require().NoError(err)

	duplicate, err := suite.scheduleService.DuplicatePeriod(period.ID, &service.SaveSchedulePeriodRequest{
		StartDate: testutils.Day(2026, time.April, 6),
		EndDate:   testutils.Day(2026, time.May, 3),
	})

	suite.Require().NoError(err)
	suite.Equal("2026-04-06", duplicate.StartDate)
	suite.Equal("2026-05-03", duplicate.EndDate)

	copiedWeeks, err := suite.scheduleService.GetWeeks(duplicate.ID)
	suite.Require().NoError(err)
	suite.Require().Len(copiedWeeks, 2)
	suite.Equal(1, copiedWeeks[0].WeekNumber)
	suite.Equal(2, copiedWeeks[1].WeekNumber)

	copiedPlans, err := suite.scheduleRepo.GetDailyPlansByWeekID(copiedWeeks[0].ID)
	suite.Require().NoError(err)
	suite.Require().Len(copiedPlans, 1)
	suite.Equal(plan.ID, copiedPlans[0].DailyRotationPlanID)
}

func (suite *ShiftScheduleServiceTestSuite) TestDuplicatePeriod_TargetRangeMustBeFree() {
	_, period := suite.seedPeriod()

	_, err := suite.scheduleService.DuplicatePeriod(period.ID, &service.SaveSchedulePeriodRequest{
		StartDate: testutils.Day(2026, time.March, 15),
		EndDate:   testutils.Day(2026, time.April, 11),
	})

	suite.Error(err)
	suite.True(apperrors.IsOverlap(err))
}

func TestShiftScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftScheduleServiceTestSuite))
}
