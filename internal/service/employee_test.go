package service_test

import (
	"testing"

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

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockEmployeeRepositoryInterface
	mockTeamRepo     *mocks.MockTeamRepositoryInterface
	mockTrainingRepo *mocks.MockTrainingRecordRepositoryInterface
	svc              *service.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockTrainingRepo = mocks.NewMockTrainingRecordRepositoryInterface(suite.ctrl)

	suite.svc = service.NewEmployeeService(
		suite.mockRepo,
		suite.mockTeamRepo,
		suite.mockTrainingRepo,
		validator.New(),
	)
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		team := &models.Team{Name: "Night Crew"}
		team.ID = uuid.New()

		req := &service.CreateEmployeeRequest{
			TeamID:    team.ID,
			FirstName: "Noa",
			LastName:  "Bar",
		}

		suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(e *models.Employee) error {
				e.ID = uuid.New()
				return nil
			})

		resp, err := suite.svc.Create(req)

		assert.NoError(t, err)
		assert.Equal(t, "Noa", resp.FirstName)
		assert.Equal(t, team.ID, resp.TeamID)
		assert.True(t, resp.IsActive)
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.svc.Create(&service.CreateEmployeeRequest{
			TeamID:    teamID,
			FirstName: "Noa",
			LastName:  "Bar",
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})

	suite.T().Run("MissingName", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateEmployeeRequest{TeamID: uuid.New()})
		assert.Error(t, err)
	})
}

func (suite *EmployeeServiceTestSuite) TestUpdate() {
	suite.T().Run("DeactivateKeepsName", func(t *testing.T) {
		employee := &models.Employee{
			TeamID:    uuid.New(),
			FirstName: "Noa",
			LastName:  "Bar",
			IsActive:  true,
		}
		employee.ID = uuid.New()

		inactive := false
		req := &service.UpdateEmployeeRequest{IsActive: &inactive}

		suite.mockRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := suite.svc.Update(employee.ID, req)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, "Noa", resp.FirstName)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.svc.Update(id, &service.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	})
}

func (suite *EmployeeServiceTestSuite) TestGetByTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		employee := models.Employee{TeamID: teamID, FirstName: "Noa", LastName: "Bar", IsActive: true}
		employee.ID = uuid.New()

		suite.mockRepo.EXPECT().GetByTeamID(teamID, 25, 25).
			Return([]models.Employee{employee}, int64(26), nil)

		resp, err := suite.svc.GetByTeam(teamID, 2, 25)

		assert.NoError(t, err)
		assert.Len(t, resp.Employees, 1)
		assert.Equal(t, int64(26), resp.Total)
		assert.Equal(t, 2, resp.Page)
	})

	suite.T().Run("BadPagination", func(t *testing.T) {
		_, err := suite.svc.GetByTeam(uuid.New(), 0, 25)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams)
	})
}

func (suite *EmployeeServiceTestSuite) TestGetTraining() {
	suite.T().Run("Success", func(t *testing.T) {
		employee := &models.Employee{TeamID: uuid.New(), FirstName: "Noa", LastName: "Bar"}
		employee.ID = uuid.New()
		trained := []uuid.UUID{uuid.New(), uuid.New()}

		suite.mockRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)
		suite.mockTrainingRepo.EXPECT().GetJobFunctionIDs(employee.ID).Return(trained, nil)

		resp, err := suite.svc.GetTraining(employee.ID)

		assert.NoError(t, err)
		assert.Equal(t, trained, resp.JobFunctionIDs)
	})

	suite.T().Run("EmployeeNotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.svc.GetTraining(id)
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	})
}

func (suite *EmployeeServiceTestSuite) TestUpdateTraining() {
	suite.T().Run("SanitizesLegacyPlaceholders", func(t *testing.T) {
		employee := &models.Employee{TeamID: uuid.New(), FirstName: "Noa", LastName: "Bar"}
		employee.ID = uuid.New()

		keep := uuid.New()
		req := &service.UpdateTrainingRequest{
			JobFunctionIDs: []string{
				keep.String(),
				scheduling.MeterGroupSentinel,
				"not-a-uuid",
				"",
				keep.String(), // duplicate
			},
		}

		suite.mockRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)
		suite.mockTrainingRepo.EXPECT().Replace(employee.ID, []uuid.UUID{keep}).Return(nil)
		suite.mockTrainingRepo.EXPECT().GetJobFunctionIDs(employee.ID).Return([]uuid.UUID{keep}, nil)

		resp, err := suite.svc.UpdateTraining(employee.ID, req)

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{keep}, resp.JobFunctionIDs)
	})

	suite.T().Run("RetriesOnVerifyMismatch", func(t *testing.T) {
		employee := &models.Employee{TeamID: uuid.New(), FirstName: "Noa", LastName: "Bar"}
		employee.ID = uuid.New()

		wanted := uuid.New()
		req := &service.UpdateTrainingRequest{JobFunctionIDs: []string{wanted.String()}}

		suite.mockRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)

		// First write reads back stale data, second write verifies clean.
		gomock.InOrder(
			suite.mockTrainingRepo.EXPECT().Replace(employee.ID, []uuid.UUID{wanted}).Return(nil),
			suite.mockTrainingRepo.EXPECT().GetJobFunctionIDs(employee.ID).Return(nil, nil),
			suite.mockTrainingRepo.EXPECT().Replace(employee.ID, []uuid.UUID{wanted}).Return(nil),
			suite.mockTrainingRepo.EXPECT().GetJobFunctionIDs(employee.ID).Return([]uuid.UUID{wanted}, nil),
		)

		resp, err := suite.svc.UpdateTraining(employee.ID, req)

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{wanted}, resp.JobFunctionIDs)
	})

	suite.T().Run("ExhaustsRetries", func(t *testing.T) {
		employee := &models.Employee{TeamID: uuid.New(), FirstName: "Noa", LastName: "Bar"}
		employee.ID = uuid.New()

		wanted := uuid.New()
		req := &service.UpdateTrainingRequest{JobFunctionIDs: []string{wanted.String()}}

		suite.mockRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)
		suite.mockTrainingRepo.EXPECT().
			Replace(employee.ID, []uuid.UUID{wanted}).
			Return(nil).
			Times(3)
		suite.mockTrainingRepo.EXPECT().
			GetJobFunctionIDs(employee.ID).
			Return(nil, nil).
			Times(3)

		_, err := suite.svc.UpdateTraining(employee.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrTrainingVerifyFailed)
	})
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
