//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftSwapRepositoryTestSuite tests the ShiftSwapRepository
type ShiftSwapRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftSwapRepository
	factories     *testutils.FactorySet

	team     *models.Team
	employee *models.Employee
	dayShift *models.Shift
	evening  *models.Shift
	date     time.Time
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftSwapRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShiftSwapRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftSwapRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftSwapRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.team))
	suite.employee = suite.factories.Employee.WithTeam(suite.team.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(suite.employee))

	shiftRepo := NewShiftRepository(suite.baseTestSuite.DB)
	suite.dayShift = suite.factories.Shift.Create()
	suite.NoError(shiftRepo.Create(suite.dayShift))
	suite.evening = suite.factories.Shift.WithTimes("Evening Shift", "14:00", "22:30")
	suite.NoError(shiftRepo.Create(suite.evening))
}

// TearDownTest runs after each test
func (suite *ShiftSwapRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertCreates tests creating a fresh swap
func (suite *ShiftSwapRepositoryTestSuite) TestUpsertCreates() {
	swap := suite.factories.ShiftSwap.Create(
		suite.employee.ID, suite.dayShift.ID, suite.evening.ID, suite.date)

	err := suite.repo.Upsert(swap)
	suite.NoError(err)

	got, err := suite.repo.GetByEmployeeAndDate(suite.employee.ID, suite.date)
	suite.NoError(err)
	suite.Equal(suite.evening.ID, got.SwappedShiftID)
}

// TestUpsertReplacesExisting tests that a second swap for the same employee
// and date replaces the first instead of erroring on the unique index
func (suite *ShiftSwapRepositoryTestSuite) TestUpsertReplacesExisting() {
	first := suite.factories.ShiftSwap.Create(
		suite.employee.ID, suite.dayShift.ID, suite.evening.ID, suite.date)
	suite.NoError(suite.repo.Upsert(first))

	// Swap back the other way on the same date
	second := suite.factories.ShiftSwap.Create(
		suite.employee.ID, suite.evening.ID, suite.dayShift.ID, suite.date)
	suite.NoError(suite.repo.Upsert(second))

	swaps, err := suite.repo.GetByTeamAndDate(suite.team.ID, suite.date)
	suite.NoError(err)
	suite.Len(swaps, 1)
	suite.Equal(suite.dayShift.ID, swaps[0].SwappedShiftID)
}

// TestGetByTeamAndDate tests team and date scoping
func (suite *ShiftSwapRepositoryTestSuite) TestGetByTeamAndDate() {
	swap := suite.factories.ShiftSwap.Create(
		suite.employee.ID, suite.dayShift.ID, suite.evening.ID, suite.date)
	suite.NoError(suite.repo.Upsert(swap))

	swaps, err := suite.repo.GetByTeamAndDate(suite.team.ID, suite.date.AddDate(0, 0, 1))
	suite.NoError(err)
	suite.Empty(swaps)

	otherTeam := suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(otherTeam))
	swaps, err = suite.repo.GetByTeamAndDate(otherTeam.ID, suite.date)
	suite.NoError(err)
	suite.Empty(swaps)
}

func TestShiftSwapRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftSwapRepositoryTestSuite))
}
