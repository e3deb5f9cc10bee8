package service_test

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PTOServiceTestSuite defines the test suite for PTOService
type PTOServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockPTODayRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	svc              *service.PTOService

	employee *models.Employee
}

func (suite *PTOServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPTODayRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPTOService(suite.mockRepo, suite.mockEmployeeRepo, validator.New())

	suite.employee = &models.Employee{TeamID: uuid.New(), FirstName: "Dana", LastName: "Levi", IsActive: true}
	suite.employee.ID = uuid.New()
}

func (suite *PTOServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

func (suite *PTOServiceTestSuite) TestCreate() {
	suite.T().Run("FullDay", func(t *testing.T) {
		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    string(models.PTOTypeFullDay),
			Notes:      "vacation",
		}

		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(pto *models.PTODay) error {
				// Team is taken from the employee, not from the request.
				assert.Equal(t, suite.employee.TeamID, pto.TeamID)
				pto.ID = uuid.New()
				return nil
			})

		resp, err := suite.svc.Create(req)

		assert.NoError(t, err)
		assert.Equal(t, suite.employee.TeamID, resp.TeamID)
		assert.Nil(t, resp.StartTime)
	})

	suite.T().Run("PartialNeedsWindow", func(t *testing.T) {
		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    string(models.PTOTypePartial),
		}

		_, err := suite.svc.Create(req)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("PartialWithInvertedWindow", func(t *testing.T) {
		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    string(models.PTOTypePartial),
			StartTime:  strPtr("14:00"),
			EndTime:    strPtr("10:00"),
		}

		_, err := suite.svc.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	suite.T().Run("FullDayRejectsTimes", func(t *testing.T) {
		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    string(models.PTOTypeFullDay),
			StartTime:  strPtr("08:00"),
			EndTime:    strPtr("12:00"),
		}

		_, err := suite.svc.Create(req)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("UnknownType", func(t *testing.T) {
		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    "sabbatical",
		}

		_, err := suite.svc.Create(req)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("EmployeeNotFound", func(t *testing.T) {
		suite.mockEmployeeRepo.EXPECT().GetByID(suite.employee.ID).Return(nil, gorm.ErrRecordNotFound)

		req := &service.CreatePTORequest{
			EmployeeID: suite.employee.ID,
			PTODate:    "2025-06-02",
			PTOType:    string(models.PTOTypeMorning),
		}

		_, err := suite.svc.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	})
}

func (suite *PTOServiceTestSuite) TestUpdate() {
	suite.T().Run("SwitchingToFullDropsWindow", func(t *testing.T) {
		pto := &models.PTODay{
			EmployeeID: suite.employee.ID,
			TeamID:     suite.employee.TeamID,
			PTODate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			PTOType:    models.PTOTypePartial,
			StartTime:  strPtr("08:00"),
			EndTime:    strPtr("12:00"),
		}
		pto.ID = uuid.New()

		full := string(models.PTOTypeFullDay)
		req := &service.UpdatePTORequest{PTOType: &full}

		suite.mockRepo.EXPECT().GetByID(pto.ID).Return(pto, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := suite.svc.Update(pto.ID, req)

		assert.NoError(t, err)
		assert.Equal(t, full, resp.PTOType)
		assert.Nil(t, resp.StartTime)
		assert.Nil(t, resp.EndTime)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.svc.Update(id, &service.UpdatePTORequest{})
		assert.ErrorIs(t, err, apperrors.ErrPTODayNotFound)
	})
}

func (suite *PTOServiceTestSuite) TestGetByTeamAndDate() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := suite.employee.TeamID
		date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		pto := models.PTODay{
			EmployeeID: suite.employee.ID,
			TeamID:     teamID,
			PTODate:    date,
			PTOType:    models.PTOTypeMorning,
		}
		pto.ID = uuid.New()

		suite.mockRepo.EXPECT().GetByTeamAndDate(teamID, date).Return([]models.PTODay{pto}, nil)

		responses, err := suite.svc.GetByTeamAndDate(teamID, "2025-06-02")

		assert.NoError(t, err)
		assert.Len(t, responses, 1)
		assert.Equal(t, string(models.PTOTypeMorning), responses[0].PTOType)
	})

	suite.T().Run("BadDate", func(t *testing.T) {
		_, err := suite.svc.GetByTeamAndDate(uuid.Nil, "someday")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})
}

func TestPTOServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PTOServiceTestSuite))
}
