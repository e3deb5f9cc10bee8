//go:build integration
// +build integration

package repository

import (
	"testing"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TrainingRecordRepositoryTestSuite tests the TrainingRecordRepository
type TrainingRecordRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrainingRecordRepository
	factories     *testutils.FactorySet

	team     *models.Team
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *TrainingRecordRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTrainingRecordRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrainingRecordRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrainingRecordRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.team))
	suite.employee = suite.factories.Employee.WithTeam(suite.team.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(suite.employee))
}

// TearDownTest runs after each test
func (suite *TrainingRecordRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TrainingRecordRepositoryTestSuite) createJobFunctions(n int) []uuid.UUID {
	jfRepo := NewJobFunctionRepository(suite.baseTestSuite.DB)
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		jf := suite.factories.JobFunction.Create()
		suite.NoError(jfRepo.Create(jf))
		ids[i] = jf.ID
	}
	return ids
}

// TestReplaceAndGet tests the replace-then-read round trip
func (suite *TrainingRecordRepositoryTestSuite) TestReplaceAndGet() {
	jfIDs := suite.createJobFunctions(3)

	err := suite.repo.Replace(suite.employee.ID, jfIDs)
	suite.NoError(err)

	got, err := suite.repo.GetJobFunctionIDs(suite.employee.ID)
	suite.NoError(err)
	suite.ElementsMatch(jfIDs, got)
}

// TestReplaceOverwrites tests that Replace discards the previous set entirely
func (suite *TrainingRecordRepositoryTestSuite) TestReplaceOverwrites() {
	jfIDs := suite.createJobFunctions(3)

	suite.NoError(suite.repo.Replace(suite.employee.ID, jfIDs))
	suite.NoError(suite.repo.Replace(suite.employee.ID, jfIDs[:1]))

	got, err := suite.repo.GetJobFunctionIDs(suite.employee.ID)
	suite.NoError(err)
	suite.ElementsMatch(jfIDs[:1], got)
}

// TestReplaceWithEmptySet tests that an empty set clears all training
func (suite *TrainingRecordRepositoryTestSuite) TestReplaceWithEmptySet() {
	jfIDs := suite.createJobFunctions(2)
	suite.NoError(suite.repo.Replace(suite.employee.ID, jfIDs))

	suite.NoError(suite.repo.Replace(suite.employee.ID, nil))

	got, err := suite.repo.GetJobFunctionIDs(suite.employee.ID)
	suite.NoError(err)
	suite.Empty(got)
}

// TestGetAllByEmployeeIDs tests the bulk training lookup
func (suite *TrainingRecordRepositoryTestSuite) TestGetAllByEmployeeIDs() {
	jfIDs := suite.createJobFunctions(2)

	second := suite.factories.Employee.WithTeam(suite.team.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(second))
	untrained := suite.factories.Employee.WithTeam(suite.team.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(untrained))

	suite.NoError(suite.repo.Replace(suite.employee.ID, jfIDs))
	suite.NoError(suite.repo.Replace(second.ID, jfIDs[:1]))

	got, err := suite.repo.GetAllByEmployeeIDs([]uuid.UUID{suite.employee.ID, second.ID, untrained.ID})

	suite.NoError(err)
	suite.Len(got, 2)
	suite.ElementsMatch(jfIDs, got[suite.employee.ID])
	suite.ElementsMatch(jfIDs[:1], got[second.ID])
	suite.NotContains(got, untrained.ID)
}

// TestDuplicatePairRejected tests the unique employee/job-function constraint
func (suite *TrainingRecordRepositoryTestSuite) TestDuplicatePairRejected() {
	jfIDs := suite.createJobFunctions(1)
	suite.NoError(suite.repo.Replace(suite.employee.ID, jfIDs))

	duplicate := models.TrainingRecord{
		EmployeeID:    suite.employee.ID,
		JobFunctionID: jfIDs[0],
	}
	err := suite.baseTestSuite.DB.Create(&duplicate).Error
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func TestTrainingRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingRecordRepositoryTestSuite))
}
