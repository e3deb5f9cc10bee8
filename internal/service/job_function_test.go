package service_test

import (
	"testing"

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

// JobFunctionServiceTestSuite defines the test suite for JobFunctionService
type JobFunctionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockJobFunctionRepositoryInterface
	svc      *service.JobFunctionService
}

func (suite *JobFunctionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockJobFunctionRepositoryInterface(suite.ctrl)
	suite.svc = service.NewJobFunctionService(suite.mockRepo, validator.New())
}

func (suite *JobFunctionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *JobFunctionServiceTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		rate := 12.5
		req := &service.CreateJobFunctionRequest{
			Name:             "Sorting",
			ColorCode:        "#2f81f7",
			ProductivityRate: &rate,
			UnitOfMeasure:    "packages",
			SortOrder:        3,
		}

		suite.mockRepo.EXPECT().GetByName("Sorting").Return(nil, gorm.ErrRecordNotFound)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(jf *models.JobFunction) error {
				jf.ID = uuid.New()
				return nil
			})

		resp, err := suite.svc.Create(req)

		assert.NoError(t, err)
		assert.Equal(t, "Sorting", resp.Name)
		assert.Equal(t, 12.5, *resp.ProductivityRate)
		assert.True(t, resp.IsActive)
	})

	suite.T().Run("DuplicateName", func(t *testing.T) {
		existing := &models.JobFunction{Name: "Sorting"}
		existing.ID = uuid.New()

		suite.mockRepo.EXPECT().GetByName("Sorting").Return(existing, nil)

		_, err := suite.svc.Create(&service.CreateJobFunctionRequest{Name: "Sorting"})
		assert.ErrorIs(t, err, apperrors.ErrJobFunctionExists)
	})

	suite.T().Run("MissingName", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateJobFunctionRequest{})
		assert.Error(t, err)
	})
}

func (suite *JobFunctionServiceTestSuite) TestGetGroupedCatalog() {
	suite.T().Run("CollapsesMeterVariants", func(t *testing.T) {
		sorting := models.JobFunction{Name: "Sorting", IsActive: true, SortOrder: 1}
		sorting.ID = uuid.New()
		meter1 := models.JobFunction{Name: "Meter 1", IsActive: true, SortOrder: 5}
		meter1.ID = uuid.New()
		meter2 := models.JobFunction{Name: "Meter 2", IsActive: true, SortOrder: 6}
		meter2.ID = uuid.New()

		suite.mockRepo.EXPECT().GetActive().
			Return([]models.JobFunction{sorting, meter1, meter2}, nil)

		catalog, err := suite.svc.GetGroupedCatalog()

		assert.NoError(t, err)
		assert.Len(t, catalog, 2)
		assert.Equal(t, "Sorting", catalog[0].Name)
		assert.False(t, catalog[0].IsGroup)

		group := catalog[1]
		assert.Equal(t, "Meter", group.Name)
		assert.True(t, group.IsGroup)
		assert.Len(t, group.IndividualMeters, 2)
		assert.Equal(t, "Meter 1", group.IndividualMeters[0].Name)
		assert.Equal(t, "Meter 2", group.IndividualMeters[1].Name)
	})

	suite.T().Run("NoMetersNoGroup", func(t *testing.T) {
		packing := models.JobFunction{Name: "Packing", IsActive: true}
		packing.ID = uuid.New()

		suite.mockRepo.EXPECT().GetActive().Return([]models.JobFunction{packing}, nil)

		catalog, err := suite.svc.GetGroupedCatalog()

		assert.NoError(t, err)
		assert.Len(t, catalog, 1)
		assert.False(t, catalog[0].IsGroup)
	})
}

func (suite *JobFunctionServiceTestSuite) TestUpdate() {
	suite.T().Run("Deactivate", func(t *testing.T) {
		jf := &models.JobFunction{Name: "Sorting", IsActive: true}
		jf.ID = uuid.New()

		inactive := false
		req := &service.UpdateJobFunctionRequest{IsActive: &inactive}

		suite.mockRepo.EXPECT().GetByID(jf.ID).Return(jf, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := suite.svc.Update(jf.ID, req)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.svc.Update(id, &service.UpdateJobFunctionRequest{})
		assert.ErrorIs(t, err, apperrors.ErrJobFunctionNotFound)
	})
}

func (suite *JobFunctionServiceTestSuite) TestDelete() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, suite.svc.Delete(id), apperrors.ErrJobFunctionNotFound)
	})
}

func TestJobFunctionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobFunctionServiceTestSuite))
}
