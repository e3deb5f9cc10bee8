package service_test

import (
	"os"
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CleanupServiceTestSuite defines the test suite for CleanupService
type CleanupServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockLogRepo        *mocks.MockCleanupLogRepositoryInterface
}

func (suite *CleanupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockLogRepo = mocks.NewMockCleanupLogRepositoryInterface(suite.ctrl)
}

func (suite *CleanupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CleanupServiceTestSuite) newService(retentionDays, retentionMinDays int, export bool, exportDir string) *service.CleanupService {
	return service.NewCleanupService(
		suite.mockAssignmentRepo,
		suite.mockLogRepo,
		retentionDays, retentionMinDays, export, exportDir,
	)
}

func oldAssignment(daysAgo int, firstName, lastName, jobFunction string) models.ScheduleAssignment {
	a := models.ScheduleAssignment{
		EmployeeID:    uuid.New(),
		JobFunctionID: uuid.New(),
		ShiftID:       uuid.New(),
		ScheduleDate:  time.Now().AddDate(0, 0, -daysAgo),
		StartTime:     "08:00",
		EndTime:       "16:00",
		Employee:      models.Employee{FirstName: firstName, LastName: lastName},
		JobFunction:   models.JobFunction{Name: jobFunction},
	}
	a.ID = uuid.New()
	return a
}

func (suite *CleanupServiceTestSuite) TestRun() {
	suite.T().Run("RetentionBelowFloor", func(t *testing.T) {
		svc := suite.newService(10, 30, false, "")

		_, err := svc.Run()
		assert.ErrorIs(t, err, apperrors.ErrRetentionTooShort)
	})

	suite.T().Run("NothingToPurgeStillLogged", func(t *testing.T) {
		svc := suite.newService(90, 30, true, t.TempDir())

		suite.mockAssignmentRepo.EXPECT().GetOlderThan(gomock.Any()).Return(nil, nil)
		suite.mockLogRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *models.CleanupLog) error {
				assert.Equal(t, 0, entry.AssignmentsFound)
				assert.Equal(t, 0, entry.AssignmentsPurged)
				return nil
			})

		result, err := svc.Run()

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Found)
		assert.Equal(t, 0, result.Purged)
		assert.Empty(t, result.ExportFile)
	})

	suite.T().Run("PurgeWithExport", func(t *testing.T) {
		dir := t.TempDir()
		svc := suite.newService(90, 30, true, dir)

		old := []models.ScheduleAssignment{
			oldAssignment(120, "Dana", "Levi", "Sorting"),
			oldAssignment(100, "Noa", "Bar", "Meter 2"),
		}

		suite.mockAssignmentRepo.EXPECT().GetOlderThan(gomock.Any()).Return(old, nil)
		suite.mockAssignmentRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(2), nil)
		suite.mockLogRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *models.CleanupLog) error {
				assert.Equal(t, 2, entry.AssignmentsFound)
				assert.Equal(t, 2, entry.AssignmentsPurged)
				assert.Contains(t, entry.Notes, "exported to ")
				return nil
			})

		result, err := svc.Run()

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Found)
		assert.Equal(t, 2, result.Purged)
		assert.NotEmpty(t, result.ExportFile)

		data, readErr := os.ReadFile(result.ExportFile)
		assert.NoError(t, readErr)
		assert.Contains(t, string(data), "Dana Levi")
		assert.Contains(t, string(data), "Meter 2")
	})

	suite.T().Run("PurgeWithoutExport", func(t *testing.T) {
		svc := suite.newService(90, 30, false, "")

		old := []models.ScheduleAssignment{oldAssignment(120, "Dana", "Levi", "Sorting")}

		suite.mockAssignmentRepo.EXPECT().GetOlderThan(gomock.Any()).Return(old, nil)
		suite.mockAssignmentRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(1), nil)
		suite.mockLogRepo.EXPECT().Create(gomock.Any()).Return(nil)

		result, err := svc.Run()

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Purged)
		assert.Empty(t, result.ExportFile)
	})
}

func (suite *CleanupServiceTestSuite) TestGetRecentLogs() {
	suite.T().Run("Success", func(t *testing.T) {
		svc := suite.newService(90, 30, false, "")

		entry := models.CleanupLog{
			CleanupDate:       time.Now(),
			CutoffDate:        time.Now().AddDate(0, 0, -90),
			AssignmentsFound:  5,
			AssignmentsPurged: 5,
			Notes:             "exported to archives/schedule-archive-x.yaml",
		}
		entry.ID = uuid.New()

		suite.mockLogRepo.EXPECT().GetRecent(10).Return([]models.CleanupLog{entry}, nil)

		logs, err := svc.GetRecentLogs(10)

		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, 5, logs[0].Purged)
	})

	suite.T().Run("DefaultsLimit", func(t *testing.T) {
		svc := suite.newService(90, 30, false, "")

		suite.mockLogRepo.EXPECT().GetRecent(20).Return(nil, nil)

		logs, err := svc.GetRecentLogs(0)

		assert.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestCleanupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CleanupServiceTestSuite))
}
