package service_test

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/scheduling"
	"shiftboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ScheduleServiceTestSuite defines the test suite for ScheduleService
type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockEmployeeRepo   *mocks.MockEmployeeRepositoryInterface
	mockJobFuncRepo    *mocks.MockJobFunctionRepositoryInterface
	mockShiftRepo      *mocks.MockShiftRepositoryInterface
	mockTrainingRepo   *mocks.MockTrainingRecordRepositoryInterface
	svc                *service.ScheduleService

	employee *models.Employee
	jf       *models.JobFunction
	shift    *models.Shift
	date     time.Time
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockJobFuncRepo = mocks.NewMockJobFunctionRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockTrainingRepo = mocks.NewMockTrainingRecordRepositoryInterface(suite.ctrl)

	suite.svc = service.NewScheduleService(
		suite.mockAssignmentRepo,
		suite.mockEmployeeRepo,
		suite.mockJobFuncRepo,
		suite.mockShiftRepo,
		suite.mockTrainingRepo,
		validator.New(),
		6, 20,
	)

	suite.employee = &models.Employee{
		TeamID:    uuid.New(),
		FirstName: "Dana",
		LastName:  "Levi",
		IsActive:  true,
	}
	suite.employee.ID = uuid.New()

	suite.jf = &models.JobFunction{Name: "Sorting", IsActive: true}
	suite.jf.ID = uuid.New()

	suite.shift = &models.Shift{Name: "Morning", StartTime: "06:00", EndTime: "14:00", IsActive: true}
	suite.shift.ID = uuid.New()

	suite.date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) createRequest() *service.CreateAssignmentRequest {
	return &service.CreateAssignmentRequest{
		EmployeeID:    suite.employee.ID,
		JobFunctionID: suite.jf.ID,
		ShiftID:       suite.shift.ID,
		ScheduleDate:  "2025-06-02",
		StartTime:     "08:00",
		EndTime:       "12:00",
	}
}

// expectRuleInputs wires the three reads runRules performs, with the employee
// trained in the suite's job function and no other assignments on the date.
func (suite *ScheduleServiceTestSuite) expectRuleInputs(existing []models.ScheduleAssignment, trainedIDs []uuid.UUID) {
	suite.mockAssignmentRepo.EXPECT().
		GetByEmployeeAndDate(suite.employee.ID, suite.date).
		Return(existing, nil)
	suite.mockTrainingRepo.EXPECT().
		GetJobFunctionIDs(suite.employee.ID).
		Return(trainedIDs, nil)
	suite.mockJobFuncRepo.EXPECT().
		GetActive().
		Return([]models.JobFunction{*suite.jf}, nil)
}

func (suite *ScheduleServiceTestSuite) TestCreateAssignment() {
	suite.T().Run("Success", func(t *testing.T) {
		req := suite.createRequest()
		assignmentID := uuid.New()

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
		suite.mockJobFuncRepo.EXPECT().GetByID(suite.jf.ID).Return(suite.jf, nil)
		suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
		suite.expectRuleInputs(nil, []uuid.UUID{suite.jf.ID})

		suite.mockAssignmentRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(a *models.ScheduleAssignment) error {
				a.ID = assignmentID
				return nil
			})

		stored := &models.ScheduleAssignment{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ShiftID:       suite.shift.ID,
			ScheduleDate:  suite.date,
			StartTime:     "08:00",
			EndTime:       "12:00",
			Employee:      *suite.employee,
			JobFunction:   *suite.jf,
			Shift:         *suite.shift,
		}
		stored.ID = assignmentID
		suite.mockAssignmentRepo.EXPECT().GetByID(assignmentID).Return(stored, nil)

		resp, result, err := suite.svc.CreateAssignment(req)

		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, assignmentID, resp.ID)
		assert.Equal(t, "Dana Levi", resp.EmployeeName)
		assert.Equal(t, "Sorting", resp.JobFunctionName)
		assert.Equal(t, "Morning", resp.ShiftName)
		assert.Equal(t, "2025-06-02", resp.ScheduleDate)
	})

	suite.T().Run("RuleViolationNotPersisted", func(t *testing.T) {
		req := suite.createRequest()

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
		suite.mockJobFuncRepo.EXPECT().GetByID(suite.jf.ID).Return(suite.jf, nil)
		suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
		// No training records, so the training rule fails. Create must not run.
		suite.expectRuleInputs(nil, nil)

		resp, result, err := suite.svc.CreateAssignment(req)

		assert.NoError(t, err)
		assert.Nil(t, resp)
		assert.NotNil(t, result)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrained)
	})

	suite.T().Run("CollectsAllViolations", func(t *testing.T) {
		req := suite.createRequest()
		req.StartTime = "08:00"
		req.EndTime = "08:15"

		occupied := models.ScheduleAssignment{
			EmployeeID:   suite.employee.ID,
			ScheduleDate: suite.date,
			StartTime:    "08:00",
			EndTime:      "10:00",
		}
		occupied.ID = uuid.New()

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
		suite.mockJobFuncRepo.EXPECT().GetByID(suite.jf.ID).Return(suite.jf, nil)
		suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
		suite.expectRuleInputs([]models.ScheduleAssignment{occupied}, nil)

		_, result, err := suite.svc.CreateAssignment(req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Errors, 3)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrained)
		assert.Contains(t, result.Errors, scheduling.ErrTooShort)
		assert.Contains(t, result.Errors, scheduling.ErrDoubleBooked)
	})

	suite.T().Run("InactiveEmployee", func(t *testing.T) {
		inactive := *suite.employee
		inactive.IsActive = false

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(&inactive, nil)

		_, _, err := suite.svc.CreateAssignment(suite.createRequest())
		assert.ErrorIs(t, err, apperrors.ErrEmployeeInactive)
	})

	suite.T().Run("EmployeeNotFound", func(t *testing.T) {
		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(nil, gorm.ErrRecordNotFound)

		_, _, err := suite.svc.CreateAssignment(suite.createRequest())
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	})

	suite.T().Run("InactiveJobFunction", func(t *testing.T) {
		dormant := *suite.jf
		dormant.IsActive = false

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
		suite.mockJobFuncRepo.EXPECT().GetByID(suite.jf.ID).Return(&dormant, nil)

		_, _, err := suite.svc.CreateAssignment(suite.createRequest())
		assert.ErrorIs(t, err, apperrors.ErrJobFunctionInactive)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		req := suite.createRequest()
		req.ScheduleDate = "06/02/2025"

		_, _, err := suite.svc.CreateAssignment(req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})

	suite.T().Run("MissingFields", func(t *testing.T) {
		_, _, err := suite.svc.CreateAssignment(&service.CreateAssignmentRequest{})
		assert.Error(t, err)
	})
}

func (suite *ScheduleServiceTestSuite) TestUpdateAssignment() {
	suite.T().Run("ShrinkingOwnSpanDoesNotSelfConflict", func(t *testing.T) {
		assignmentID := uuid.New()
		existing := &models.ScheduleAssignment{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ShiftID:       suite.shift.ID,
			ScheduleDate:  suite.date,
			StartTime:     "08:00",
			EndTime:       "12:00",
		}
		existing.ID = assignmentID

		newEnd := "10:00"
		req := &service.UpdateAssignmentRequest{EndTime: &newEnd}

		suite.mockAssignmentRepo.EXPECT().GetByID(assignmentID).Return(existing, nil)
		// The stored row for the same id still spans 08:00-12:00; it must be
		// skipped by the overlap check.
		suite.expectRuleInputs([]models.ScheduleAssignment{{
			BaseModel:    models.BaseModel{ID: assignmentID},
			EmployeeID:   suite.employee.ID,
			ScheduleDate: suite.date,
			StartTime:    "08:00",
			EndTime:      "12:00",
		}}, []uuid.UUID{suite.jf.ID})
		suite.mockAssignmentRepo.EXPECT().Update(gomock.Any()).Return(nil)

		reloaded := *existing
		reloaded.EndTime = newEnd
		suite.mockAssignmentRepo.EXPECT().GetByID(assignmentID).Return(&reloaded, nil)

		resp, result, err := suite.svc.UpdateAssignment(assignmentID, req)

		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "10:00", resp.EndTime)
	})

	suite.T().Run("RuleViolationNotPersisted", func(t *testing.T) {
		assignmentID := uuid.New()
		existing := &models.ScheduleAssignment{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ShiftID:       suite.shift.ID,
			ScheduleDate:  suite.date,
			StartTime:     "08:00",
			EndTime:       "12:00",
		}
		existing.ID = assignmentID

		badEnd := "08:10"
		req := &service.UpdateAssignmentRequest{EndTime: &badEnd}

		suite.mockAssignmentRepo.EXPECT().GetByID(assignmentID).Return(existing, nil)
		suite.expectRuleInputs(nil, []uuid.UUID{suite.jf.ID})

		resp, result, err := suite.svc.UpdateAssignment(assignmentID, req)

		assert.NoError(t, err)
		assert.Nil(t, resp)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrTooShort)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, _, err := suite.svc.UpdateAssignment(id, &service.UpdateAssignmentRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})
}

func (suite *ScheduleServiceTestSuite) TestValidate() {
	suite.T().Run("ReportsWithoutWriting", func(t *testing.T) {
		req := &service.ValidateAssignmentRequest{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ScheduleDate:  "2025-06-02",
			StartTime:     "08:00",
			EndTime:       "09:00",
		}

		occupied := models.ScheduleAssignment{
			EmployeeID:   suite.employee.ID,
			ScheduleDate: suite.date,
			StartTime:    "08:30",
			EndTime:      "11:00",
		}
		occupied.ID = uuid.New()
		suite.expectRuleInputs([]models.ScheduleAssignment{occupied}, []uuid.UUID{suite.jf.ID})

		result, err := suite.svc.Validate(req)

		assert.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{scheduling.ErrDoubleBooked}, result.Errors)
	})

	suite.T().Run("ValidCandidate", func(t *testing.T) {
		req := &service.ValidateAssignmentRequest{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ScheduleDate:  "2025-06-02",
			StartTime:     "08:00",
			EndTime:       "09:00",
		}
		suite.expectRuleInputs(nil, []uuid.UUID{suite.jf.ID})

		result, err := suite.svc.Validate(req)

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func (suite *ScheduleServiceTestSuite) TestDeleteAssignment() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		stored := &models.ScheduleAssignment{}
		stored.ID = id

		suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(stored, nil)
		suite.mockAssignmentRepo.EXPECT().Delete(id).Return(nil)

		assert.NoError(t, suite.svc.DeleteAssignment(id))
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, suite.svc.DeleteAssignment(id), apperrors.ErrAssignmentNotFound)
	})
}

func (suite *ScheduleServiceTestSuite) TestGetDay() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := suite.employee.TeamID
		stored := models.ScheduleAssignment{
			EmployeeID:    suite.employee.ID,
			JobFunctionID: suite.jf.ID,
			ShiftID:       suite.shift.ID,
			ScheduleDate:  suite.date,
			StartTime:     "08:00",
			EndTime:       "12:00",
			Employee:      *suite.employee,
			JobFunction:   *suite.jf,
			Shift:         *suite.shift,
		}
		stored.ID = uuid.New()

		suite.mockAssignmentRepo.EXPECT().GetByDate(teamID, suite.date).
			Return([]models.ScheduleAssignment{stored}, nil)
		suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{*suite.shift}, nil)

		day, err := suite.svc.GetDay(teamID, "2025-06-02")

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-02", day.Date)
		assert.Len(t, day.Assignments, 1)
		assert.Equal(t, "Dana Levi", day.Assignments[0].EmployeeName)
		// Four slots per hour across the 06:00-20:00 grid.
		assert.Len(t, day.TimeSlots, 14*4)
		assert.Equal(t, "06:00", day.TimeSlots[0].ID)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		_, err := suite.svc.GetDay(uuid.Nil, "yesterday")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})
}

func (suite *ScheduleServiceTestSuite) TestCopyDay() {
	teamID := suite.employee.TeamID
	target := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	suite.T().Run("Success", func(t *testing.T) {
		source := models.ScheduleAssignment{EmployeeID: suite.employee.ID, ScheduleDate: suite.date}
		source.ID = uuid.New()

		suite.mockAssignmentRepo.EXPECT().GetByDate(teamID, suite.date).
			Return([]models.ScheduleAssignment{source}, nil)
		suite.mockAssignmentRepo.EXPECT().CopyToDate(teamID, suite.date, target).Return(3, nil)

		resp, err := suite.svc.CopyDay(teamID, "2025-06-02", "2025-06-03")

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Copied)
		assert.Equal(t, "2025-06-02", resp.SourceDate)
		assert.Equal(t, "2025-06-03", resp.TargetDate)
	})

	suite.T().Run("SameDate", func(t *testing.T) {
		_, err := suite.svc.CopyDay(teamID, "2025-06-02", "2025-06-02")
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	suite.T().Run("EmptySource", func(t *testing.T) {
		suite.mockAssignmentRepo.EXPECT().GetByDate(teamID, suite.date).Return(nil, nil)

		_, err := suite.svc.CopyDay(teamID, "2025-06-02", "2025-06-03")
		assert.ErrorIs(t, err, apperrors.ErrNothingToCopy)
	})
}

func (suite *ScheduleServiceTestSuite) TestClearDay() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockAssignmentRepo.EXPECT().DeleteByDate(teamID, suite.date).Return(int64(4), nil)

		deleted, err := suite.svc.ClearDay(teamID, "2025-06-02")

		assert.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		_, err := suite.svc.ClearDay(uuid.Nil, "2025.06.02")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
