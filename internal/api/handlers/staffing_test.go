package handlers_test

import (
	"net/http"
	"testing"

	"shiftboard-backend/internal/api/handlers"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/scheduling"
	"shiftboard-backend/internal/service"
	"shiftboard-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StaffingHandlerTestSuite defines the test suite for StaffingHandler
type StaffingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStaffingServiceInterface
	handler     *handlers.StaffingHandler
	httpSuite   *testutils.HTTPTestSuite

	teamID uuid.UUID
}

func (suite *StaffingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStaffingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStaffingHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.teamID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("team_id", suite.teamID.String())
		c.Set("is_super_admin", false)
	})

	staffing := suite.httpSuite.Router.Group("/api/v1/staffing")
	{
		staffing.PUT("/targets", suite.handler.UpsertTarget)
		staffing.GET("/targets/:date", suite.handler.GetTargets)
		staffing.GET("/summary/:date", suite.handler.GetSummary)
	}
}

func (suite *StaffingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StaffingHandlerTestSuite) TestUpsertTarget() {
	suite.T().Run("Success", func(t *testing.T) {
		jobFunctionID := uuid.New()
		expected := &service.DailyTargetResponse{
			ID:            uuid.New(),
			JobFunctionID: jobFunctionID,
			ScheduleDate:  "2025-06-02",
			TargetUnits:   150,
		}

		suite.mockService.EXPECT().UpsertTarget(gomock.Any()).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/staffing/targets", map[string]interface{}{
			"job_function_id": jobFunctionID.String(),
			"schedule_date":   "2025-06-02",
			"target_units":    150,
		})

		var response service.DailyTargetResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 150.0, response.TargetUnits)
	})

	suite.T().Run("JobFunctionNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().UpsertTarget(gomock.Any()).
			Return(nil, apperrors.ErrJobFunctionNotFound)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/staffing/targets", map[string]interface{}{
			"job_function_id": uuid.New().String(),
			"schedule_date":   "2025-06-02",
			"target_units":    150,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "job function not found")
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/staffing/targets", "nope")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *StaffingHandlerTestSuite) TestGetTargets() {
	suite.T().Run("Success", func(t *testing.T) {
		targets := []service.DailyTargetResponse{
			{ID: uuid.New(), JobFunctionID: uuid.New(), ScheduleDate: "2025-06-02", TargetUnits: 80},
		}

		suite.mockService.EXPECT().GetTargets("2025-06-02").Return(targets, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/staffing/targets/2025-06-02", nil)

		var response []service.DailyTargetResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		suite.mockService.EXPECT().GetTargets("junk").Return(nil, apperrors.ErrInvalidDateFormat)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/staffing/targets/junk", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *StaffingHandlerTestSuite) TestGetSummary() {
	suite.T().Run("Success", func(t *testing.T) {
		summary := &service.StaffingSummaryResponse{
			Date: "2025-06-02",
			JobFunctions: []service.JobFunctionStaffingResponse{
				{
					JobFunctionID:   uuid.New(),
					JobFunctionName: "Meter",
					IsGroup:         true,
					ScheduledHours:  6,
					RequiredHours:   8,
					Status:          scheduling.StaffingCritical,
					StatusText:      "Critical - Need more staff",
					Percentage:      75,
					Difference:      -2,
				},
			},
		}

		suite.mockService.EXPECT().GetSummary(suite.teamID, "2025-06-02").Return(summary, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/staffing/summary/2025-06-02", nil)

		var response service.StaffingSummaryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.JobFunctions, 1)
		assert.Equal(t, scheduling.StaffingCritical, response.JobFunctions[0].Status)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		suite.mockService.EXPECT().GetSummary(suite.teamID, "junk").
			Return(nil, apperrors.ErrInvalidDateFormat)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/staffing/summary/junk", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestStaffingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StaffingHandlerTestSuite))
}
