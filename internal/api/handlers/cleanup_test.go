package handlers_test

import (
	"net/http"
	"testing"

	"shiftboard-backend/internal/api/handlers"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/service"
	"shiftboard-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CleanupHandlerTestSuite defines the test suite for CleanupHandler
type CleanupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCleanupServiceInterface
	handler     *handlers.CleanupHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CleanupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCleanupServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCleanupHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	cleanup := suite.httpSuite.Router.Group("/api/v1/cleanup")
	{
		cleanup.POST("/run", suite.handler.RunCleanup)
		cleanup.GET("/logs", suite.handler.GetCleanupLogs)
	}
}

func (suite *CleanupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CleanupHandlerTestSuite) TestRunCleanup() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.CleanupResult{
			CutoffDate: "2025-03-04",
			Found:      12,
			Purged:     12,
			ExportFile: "archives/schedule-archive-20250602-040000.yaml",
		}

		suite.mockService.EXPECT().Run().Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/cleanup/run", nil)

		var response service.CleanupResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 12, response.Purged)
		assert.NotEmpty(t, response.ExportFile)
	})

	suite.T().Run("RetentionTooShort", func(t *testing.T) {
		suite.mockService.EXPECT().Run().Return(nil, apperrors.ErrRetentionTooShort)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/cleanup/run", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *CleanupHandlerTestSuite) TestGetCleanupLogs() {
	suite.T().Run("DefaultLimit", func(t *testing.T) {
		suite.mockService.EXPECT().GetRecentLogs(20).Return([]service.CleanupLogResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/cleanup/logs", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("ExplicitLimit", func(t *testing.T) {
		logs := []service.CleanupLogResponse{{Found: 3, Purged: 3}}
		suite.mockService.EXPECT().GetRecentLogs(5).Return(logs, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/cleanup/logs?limit=5", nil)

		var response []service.CleanupLogResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("GarbageLimitFallsBack", func(t *testing.T) {
		suite.mockService.EXPECT().GetRecentLogs(20).Return(nil, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/cleanup/logs?limit=soon", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestCleanupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CleanupHandlerTestSuite))
}
