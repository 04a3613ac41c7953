package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shift-planning-backend/internal/api/handlers"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/mocks"
	"shift-planning-backend/internal/service"
	"shift-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RotationPlanHandlerTestSuite defines the test suite for RotationPlanHandler
type RotationPlanHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRotationPlanServiceInterface
	handler     *handlers.RotationPlanHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RotationPlanHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRotationPlanServiceInterface(suite.ctrl)

	suite.handler = handlers.NewRotationPlanHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	plans := v1.Group("/rotation-plans")
	{
		plans.GET("", suite.handler.ListPlans)
		plans.POST("", suite.handler.CreatePlan)
		plans.GET("/:id", suite.handler.GetPlan)
		plans.PUT("/:id", suite.handler.UpdatePlan)
		plans.DELETE("/:id", suite.handler.DeletePlan)
		plans.POST("/:id/periods", suite.handler.CreatePeriod)
	}
	periods := v1.Group("/rotation-periods")
	{
		periods.PUT("/:id", suite.handler.UpdatePeriod)
		periods.DELETE("/:id", suite.handler.DeletePeriod)
	}
}

// TearDownTest cleans up after each test
func (suite *RotationPlanHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *RotationPlanHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreatePlan tests the CreatePlan handler
func (suite *RotationPlanHandlerTestSuite) TestCreatePlan() {
	suite.T().Run("Success", func(t *testing.T) {
		scheduleTypeID := uuid.New()
		planID := uuid.New()

		requestBody := map[string]interface{}{
			"designation":      "Morning rotation",
			"description":      "Front desk mornings",
			"schedule_type_id": scheduleTypeID.String(),
		}

		expectedResponse := &service.RotationPlanResponse{
			ID:             planID,
			Designation:    "Morning rotation",
			Description:    "Front desk mornings",
			ScheduleTypeID: scheduleTypeID,
			HasPeriods:     false,
			CreatedAt:      "2026-01-05T00:00:00Z",
			UpdatedAt:      "2026-01-05T00:00:00Z",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rotation-plans", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.RotationPlanResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Designation, response.Designation)
		assert.Equal(t, expectedResponse.ScheduleTypeID, response.ScheduleTypeID)
	})

	suite.T().Run("Schedule Type Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"designation":      "Orphan plan",
			"schedule_type_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrScheduleTypeNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rotation-plans", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "schedule type not found")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/rotation-plans")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetPlan tests the GetPlan handler
func (suite *RotationPlanHandlerTestSuite) TestGetPlan() {
	suite.T().Run("Success", func(t *testing.T) {
		planID := uuid.New()

		expectedResponse := &service.RotationPlanResponse{
			ID:          planID,
			Designation: "Night rotation",
			HasPeriods:  true,
			Periods: []service.RotationPeriodResponse{
				{
					ID:            uuid.New(),
					PlanID:        planID,
					StartDate:     "2026-03-02",
					EndDate:       "2026-03-08",
					StartTime:     "22:00",
					EndTime:       "06:00",
					DurationHours: 8,
					IsNightShift:  true,
				},
			},
		}

		suite.mockService.EXPECT().
			GetByID(planID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/rotation-plans/%s", planID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.RotationPlanResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.True(t, response.HasPeriods)
		assert.Len(t, response.Periods, 1)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rotation-plans/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid plan ID")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		planID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(planID).
			Return(nil, apperrors.ErrRotationPlanNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/rotation-plans/%s", planID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "daily rotation plan not found")
	})
}

// TestListPlans tests the ListPlans handler
func (suite *RotationPlanHandlerTestSuite) TestListPlans() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.RotationPlanListResponse{
			Plans: []service.RotationPlanResponse{
				{
					ID:          uuid.New(),
					Designation: "Morning rotation",
					HasPeriods:  true,
				},
				{
					ID:          uuid.New(),
					Designation: "Night rotation",
					HasPeriods:  false,
				},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetAll(1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rotation-plans", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.RotationPlanListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Plans, 2)
		assert.True(t, response.Plans[0].HasPeriods)
		assert.False(t, response.Plans[1].HasPeriods)
		assert.Equal(t, int64(2), response.Total)
	})

	suite.T().Run("With Pagination", func(t *testing.T) {
		expectedResponse := &service.RotationPlanListResponse{
			Plans:    []service.RotationPlanResponse{},
			Total:    0,
			Page:     3,
			PageSize: 10,
		}

		suite.mockService.EXPECT().
			GetAll(3, 10).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rotation-plans?page=3&page_size=10", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestDeletePlan tests the DeletePlan handler
func (suite *RotationPlanHandlerTestSuite) TestDeletePlan() {
	suite.T().Run("Success", func(t *testing.T) {
		planID := uuid.New()

		suite.mockService.EXPECT().
			Delete(planID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/rotation-plans/%s", planID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Still Referenced", func(t *testing.T) {
		planID := uuid.New()

		suite.mockService.EXPECT().
			Delete(planID).
			Return(&apperrors.UnassignableReferenceError{
				Entity: "daily rotation plan",
				Name:   "Night rotation",
				Reason: "still assigned to 2 shift schedule weekday(s)",
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/rotation-plans/%s", planID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "cannot be used")
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rotation-plans/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid plan ID")
	})
}

// TestCreatePeriod tests the CreatePeriod handler
func (suite *RotationPlanHandlerTestSuite) TestCreatePeriod() {
	suite.T().Run("Success", func(t *testing.T) {
		planID := uuid.New()

		requestBody := map[string]interface{}{
			"start_date": "2026-03-02T00:00:00Z",
			"end_date":   "2026-03-08T00:00:00Z",
			"start_time": "08:00",
			"end_time":   "16:00",
		}

		expectedResponse := &service.RotationPeriodResponse{
			ID:            uuid.New(),
			PlanID:        planID,
			StartDate:     "2026-03-02",
			EndDate:       "2026-03-08",
			StartTime:     "08:00",
			EndTime:       "16:00",
			DurationHours: 8,
		}

		suite.mockService.EXPECT().
			CreatePeriod(planID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/rotation-plans/%s/periods", planID), requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.RotationPeriodResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "2026-03-02", response.StartDate)
		assert.Equal(t, "2026-03-08", response.EndDate)
	})

	suite.T().Run("Overlap Conflict", func(t *testing.T) {
		planID := uuid.New()

		requestBody := map[string]interface{}{
			"start_date": "2026-03-05T00:00:00Z",
			"end_date":   "2026-03-12T00:00:00Z",
			"start_time": "08:00",
			"end_time":   "16:00",
		}

		suite.mockService.EXPECT().
			CreatePeriod(planID, gomock.Any()).
			Return(nil, &apperrors.OverlapError{
				ConflictStart: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
				ConflictEnd:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/rotation-plans/%s/periods", planID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "range overlaps an existing period from 2026-03-02 to 2026-03-08")
	})

	suite.T().Run("Malformed Window", func(t *testing.T) {
		planID := uuid.New()

		requestBody := map[string]interface{}{
			"start_date": "2026-03-02T00:00:00Z",
			"end_date":   "2026-03-08T00:00:00Z",
			"start_time": "14:00",
			"end_time":   "10:00",
		}

		suite.mockService.EXPECT().
			CreatePeriod(planID, gomock.Any()).
			Return(nil, &apperrors.MalformedRangeError{
				Field:   "end_time",
				Message: "end must come after start, or the window must qualify as a night shift",
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/rotation-plans/%s/periods", planID), requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "malformed range")
	})

	suite.T().Run("Invalid Plan ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rotation-plans/invalid-uuid/periods", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid plan ID")
	})
}

// TestUpdatePeriod tests the UpdatePeriod handler
func (suite *RotationPlanHandlerTestSuite) TestUpdatePeriod() {
	suite.T().Run("Success", func(t *testing.T) {
		periodID := uuid.New()

		requestBody := map[string]interface{}{
			"start_date": "2026-03-05T00:00:00Z",
			"end_date":   "2026-03-20T00:00:00Z",
			"start_time": "08:00",
			"end_time":   "16:00",
		}

		expectedResponse := &service.RotationPeriodResponse{
			ID:        periodID,
			StartDate: "2026-03-05",
			EndDate:   "2026-03-20",
			StartTime: "08:00",
			EndTime:   "16:00",
		}

		suite.mockService.EXPECT().
			UpdatePeriod(periodID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/rotation-periods/%s", periodID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		periodID := uuid.New()

		requestBody := map[string]interface{}{
			"start_date": "2026-03-05T00:00:00Z",
			"end_date":   "2026-03-20T00:00:00Z",
			"start_time": "08:00",
			"end_time":   "16:00",
		}

		suite.mockService.EXPECT().
			UpdatePeriod(periodID, gomock.Any()).
			Return(nil, apperrors.ErrRotationPeriodNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/rotation-periods/%s", periodID), requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "rotation period not found")
	})
}

// TestDeletePeriod tests the DeletePeriod handler
func (suite *RotationPlanHandlerTestSuite) TestDeletePeriod() {
	suite.T().Run("Success", func(t *testing.T) {
		periodID := uuid.New()

		suite.mockService.EXPECT().
			DeletePeriod(periodID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/rotation-periods/%s", periodID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rotation-periods/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid period ID")
	})
}

// TestRotationPlanHandlerTestSuite runs the test suite
func TestRotationPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RotationPlanHandlerTestSuite))
}
