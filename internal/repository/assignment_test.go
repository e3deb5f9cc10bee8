//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	factories     *testutils.FactorySet

	team     *models.Team
	employee *models.Employee
	jf       *models.JobFunction
	shift    *models.Shift
	date     time.Time
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the entity graph an assignment needs
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team, suite.employee, suite.jf, suite.shift = suite.factories.CreateScheduleFixture()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.team))
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(suite.employee))
	suite.NoError(NewJobFunctionRepository(suite.baseTestSuite.DB).Create(suite.jf))
	suite.NoError(NewShiftRepository(suite.baseTestSuite.DB).Create(suite.shift))
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentRepositoryTestSuite) newAssignment(start, end string) *models.ScheduleAssignment {
	return suite.factories.Assignment.WithTimes(
		suite.employee.ID, suite.jf.ID, suite.shift.ID, suite.date, start, end)
}

// TestCreate tests creating a new assignment
func (suite *AssignmentRepositoryTestSuite) TestCreate() {
	assignment := suite.newAssignment("09:00", "12:00")

	err := suite.repo.Create(assignment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, assignment.ID)
	suite.NotZero(assignment.CreatedAt)
}

// TestGetByDate tests retrieving assignments scoped to a team and date
func (suite *AssignmentRepositoryTestSuite) TestGetByDate() {
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))
	suite.NoError(suite.repo.Create(suite.newAssignment("13:00", "14:00")))

	// An assignment on another date must not appear
	other := suite.factories.Assignment.WithTimes(
		suite.employee.ID, suite.jf.ID, suite.shift.ID,
		suite.date.AddDate(0, 0, 1), "09:00", "12:00")
	suite.NoError(suite.repo.Create(other))

	assignments, err := suite.repo.GetByDate(suite.team.ID, suite.date)

	suite.NoError(err)
	suite.Len(assignments, 2)
	// Ordered by start time
	suite.Equal("09:00", assignments[0].StartTime)
	suite.Equal("13:00", assignments[1].StartTime)
	// Relations preloaded
	suite.Equal(suite.employee.FirstName, assignments[0].Employee.FirstName)
}

// TestGetByDateOtherTeamExcluded tests team scoping of GetByDate
func (suite *AssignmentRepositoryTestSuite) TestGetByDateOtherTeamExcluded() {
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))

	otherTeam := suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(otherTeam))
	otherEmployee := suite.factories.Employee.WithTeam(otherTeam.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(otherEmployee))
	otherAssignment := suite.factories.Assignment.WithTimes(
		otherEmployee.ID, suite.jf.ID, suite.shift.ID, suite.date, "09:00", "12:00")
	suite.NoError(suite.repo.Create(otherAssignment))

	assignments, err := suite.repo.GetByDate(suite.team.ID, suite.date)
	suite.NoError(err)
	suite.Len(assignments, 1)

	// uuid.Nil is unscoped and sees both teams
	all, err := suite.repo.GetByDate(uuid.Nil, suite.date)
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestGetByEmployeeAndDate tests retrieving one employee's day
func (suite *AssignmentRepositoryTestSuite) TestGetByEmployeeAndDate() {
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))

	assignments, err := suite.repo.GetByEmployeeAndDate(suite.employee.ID, suite.date)
	suite.NoError(err)
	suite.Len(assignments, 1)

	assignments, err = suite.repo.GetByEmployeeAndDate(uuid.New(), suite.date)
	suite.NoError(err)
	suite.Empty(assignments)
}

// TestCopyToDate tests replicating a day's schedule onto another date
func (suite *AssignmentRepositoryTestSuite) TestCopyToDate() {
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))
	suite.NoError(suite.repo.Create(suite.newAssignment("13:00", "14:00")))

	target := suite.date.AddDate(0, 0, 7)

	// Pre-existing target content is replaced, not merged
	stale := suite.factories.Assignment.WithTimes(
		suite.employee.ID, suite.jf.ID, suite.shift.ID, target, "06:00", "07:00")
	suite.NoError(suite.repo.Create(stale))

	copied, err := suite.repo.CopyToDate(suite.team.ID, suite.date, target)

	suite.NoError(err)
	suite.Equal(2, copied)

	assignments, err := suite.repo.GetByDate(suite.team.ID, target)
	suite.NoError(err)
	suite.Len(assignments, 2)
	suite.Equal("09:00", assignments[0].StartTime)

	// Copies are new rows, source stays untouched
	source, err := suite.repo.GetByDate(suite.team.ID, suite.date)
	suite.NoError(err)
	suite.Len(source, 2)
	suite.NotEqual(source[0].ID, assignments[0].ID)
}

// TestDeleteByDate tests clearing a team's day
func (suite *AssignmentRepositoryTestSuite) TestDeleteByDate() {
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))
	suite.NoError(suite.repo.Create(suite.newAssignment("13:00", "14:00")))

	deleted, err := suite.repo.DeleteByDate(suite.team.ID, suite.date)

	suite.NoError(err)
	suite.Equal(int64(2), deleted)

	assignments, err := suite.repo.GetByDate(suite.team.ID, suite.date)
	suite.NoError(err)
	suite.Empty(assignments)
}

// TestRetention tests GetOlderThan and DeleteOlderThan against a cutoff
func (suite *AssignmentRepositoryTestSuite) TestRetention() {
	old := suite.factories.Assignment.WithTimes(
		suite.employee.ID, suite.jf.ID, suite.shift.ID,
		suite.date.AddDate(0, -6, 0), "09:00", "12:00")
	suite.NoError(suite.repo.Create(old))
	suite.NoError(suite.repo.Create(suite.newAssignment("09:00", "12:00")))

	cutoff := suite.date.AddDate(0, -3, 0)

	stale, err := suite.repo.GetOlderThan(cutoff)
	suite.NoError(err)
	suite.Len(stale, 1)
	suite.Equal(old.ID, stale[0].ID)

	deleted, err := suite.repo.DeleteOlderThan(cutoff)
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	// The current date's assignment survives
	remaining, err := suite.repo.GetByDate(suite.team.ID, suite.date)
	suite.NoError(err)
	suite.Len(remaining, 1)
}

// TestUpdate tests updating an assignment's span
func (suite *AssignmentRepositoryTestSuite) TestUpdate() {
	assignment := suite.newAssignment("09:00", "12:00")
	suite.NoError(suite.repo.Create(assignment))

	assignment.EndTime = "13:00"
	suite.NoError(suite.repo.Update(assignment))

	fetched, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal("13:00", fetched.EndTime)
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
