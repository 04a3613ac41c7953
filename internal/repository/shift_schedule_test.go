package repository

import (
	"testing"
	"time"

	"shift-planning-backend/internal/database/models"
	"shift-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftScheduleRepositoryTestSuite tests the ShiftScheduleRepository
type ShiftScheduleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftScheduleRepository
	schedules     *testutils.ShiftScheduleFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftScheduleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShiftScheduleRepository(suite.baseTestSuite.DB)
	suite.schedules = testutils.NewShiftScheduleFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftScheduleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftScheduleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftScheduleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedWeeks persists a schedule, one period and n numbered weeks
func (suite *ShiftScheduleRepositoryTestSuite) seedWeeks(n int) (*models.ShiftSchedulePeriod, []*models.ShiftScheduleWeek) {
	schedule := suite.schedules.Create()
	suite.Require().NoError(suite.repo.Create(schedule))

	period := suite.schedules.CreatePeriod(schedule.ID, testutils.Day(2026, time.March, 2), testutils.Day(2026, time.March, 29))
	suite.Require().NoError(suite.repo.CreatePeriod(period))

	weeks := make([]*models.ShiftScheduleWeek, 0, n)
	for i := 1; i <= n; i++ {
		week := suite.schedules.CreateWeek(period.ID, i)
		suite.Require().NoError(suite.repo.CreateWeek(week))
		weeks = append(weeks, week)
	}
	return period, weeks
}

func (suite *ShiftScheduleRepositoryTestSuite) TestDeleteWeek_RenumbersFollowingWeeks() {
	period, weeks := suite.seedWeeks(4)

	suite.Require().NoError(suite.repo.DeleteWeek(weeks[1]))

	remaining, err := suite.repo.GetWeeksByPeriodID(period.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 3)

	suite.Equal(weeks[0].ID, remaining[0].ID)
	suite.Equal(1, remaining[0].WeekNumber)
	suite.Equal(weeks[2].ID, remaining[1].ID)
	suite.Equal(2, remaining[1].WeekNumber)
	suite.Equal(weeks[3].ID, remaining[2].ID)
	suite.Equal(3, remaining[2].WeekNumber)
}

func (suite *ShiftScheduleRepositoryTestSuite) TestDeleteWeek_RenumbersManyWeeksWithoutUniqueConflict() {
	// Deleting the first week shifts every remaining week down by one. Each
	// decrement must land on a number already freed, or the unique index on
	// (period_id, week_number) rejects the renumbering mid-flight.
	period, weeks := suite.seedWeeks(6)

	suite.Require().NoError(suite.repo.DeleteWeek(weeks[0]))

	remaining, err := suite.repo.GetWeeksByPeriodID(period.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 5)

	for i, week := range remaining {
		suite.Equal(weeks[i+1].ID, week.ID)
		suite.Equal(i+1, week.WeekNumber)
	}
}

func (suite *ShiftScheduleRepositoryTestSuite) TestDeleteWeek_LastWeekLeavesOthersUntouched() {
	period, weeks := suite.seedWeeks(3)

	suite.Require().NoError(suite.repo.DeleteWeek(weeks[2]))

	remaining, err := suite.repo.GetWeeksByPeriodID(period.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 2)
	suite.Equal(1, remaining[0].WeekNumber)
	suite.Equal(2, remaining[1].WeekNumber)
}

func (suite *ShiftScheduleRepositoryTestSuite) TestDeleteWeek_OtherPeriodsKeepTheirNumbers() {
	periodA, weeksA := suite.seedWeeks(2)
	periodB, weeksB := suite.seedWeeks(2)

	suite.Require().NoError(suite.repo.DeleteWeek(weeksA[0]))

	remainingA, err := suite.repo.GetWeeksByPeriodID(periodA.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remainingA, 1)
	suite.Equal(weeksA[1].ID, remainingA[0].ID)
	suite.Equal(1, remainingA[0].WeekNumber)

	remainingB, err := suite.repo.GetWeeksByPeriodID(periodB.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remainingB, 2)
	suite.Equal(weeksB[0].ID, remainingB[0].ID)
	suite.Equal(1, remainingB[0].WeekNumber)
	suite.Equal(2, remainingB[1].WeekNumber)
}

func (suite *ShiftScheduleRepositoryTestSuite) TestDeleteWeek_CascadesDailyPlans() {
	_, weeks := suite.seedWeeks(1)

	scheduleType := testutils.NewScheduleTypeFactory().Create()
	suite.Require().NoError(NewScheduleTypeRepository(suite.baseTestSuite.DB).Create(scheduleType))
	plans := testutils.NewRotationPlanFactory()
	planRepo := NewRotationPlanRepository(suite.baseTestSuite.DB)
	plan := plans.Create(scheduleType.ID)
	suite.Require().NoError(planRepo.Create(plan))

	dailyPlan := &models.ShiftScheduleDailyPlan{
		WeekID:              weeks[0].ID,
		Weekday:             models.WeekdayMonday,
		DailyRotationPlanID: plan.ID,
	}
	suite.Require().NoError(suite.repo.CreateDailyPlan(dailyPlan))

	suite.Require().NoError(suite.repo.DeleteWeek(weeks[0]))

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.ShiftScheduleDailyPlan{}).
		Where("week_id = ?", weeks[0].ID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *ShiftScheduleRepositoryTestSuite) TestGetWeekByID_NotFound() {
	_, err := suite.repo.GetWeekByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestShiftScheduleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftScheduleRepositoryTestSuite))
}
