package testutils

import (
	"fmt"
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids collisions with the name unique index
		Name:     "test-team-" + id.String()[:8],
		IsActive: true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserProfileFactory provides methods to create test UserProfile data
type UserProfileFactory struct{}

// NewUserProfileFactory creates a new UserProfileFactory
func NewUserProfileFactory() *UserProfileFactory {
	return &UserProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *UserProfileFactory) Create() *models.UserProfile {
	id := uuid.New()
	return &models.UserProfile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		FullName: "Test User",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		IsSuperAdmin: false,
	}
}

// WithTeam sets the team ID for the user profile
func (f *UserProfileFactory) WithTeam(teamID uuid.UUID) *models.UserProfile {
	profile := f.Create()
	profile.TeamID = &teamID
	return profile
}

// WithEmail sets a custom email for the user profile
func (f *UserProfileFactory) WithEmail(email string) *models.UserProfile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// AsSuperAdmin marks the user profile as a super admin with no team scoping
func (f *UserProfileFactory) AsSuperAdmin() *models.UserProfile {
	profile := f.Create()
	profile.IsSuperAdmin = true
	return profile
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    uuid.New(),
		FirstName: "Jane",
		LastName:  "Doe",
		IsActive:  true,
	}
}

// WithTeam sets the team ID for the employee
func (f *EmployeeFactory) WithTeam(teamID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.TeamID = teamID
	return employee
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(first, last string) *models.Employee {
	employee := f.Create()
	employee.FirstName = first
	employee.LastName = last
	return employee
}

// JobFunctionFactory provides methods to create test JobFunction data
type JobFunctionFactory struct{}

// NewJobFunctionFactory creates a new JobFunctionFactory
func NewJobFunctionFactory() *JobFunctionFactory {
	return &JobFunctionFactory{}
}

// Create creates a test JobFunction with default values
func (f *JobFunctionFactory) Create() *models.JobFunction {
	id := uuid.New()
	rate := 50.0
	return &models.JobFunction{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "test-function-" + id.String()[:8],
		ColorCode:        "#4A90D9",
		ProductivityRate: &rate,
		UnitOfMeasure:    "units",
		IsActive:         true,
		SortOrder:        0,
	}
}

// WithName sets a custom name for the job function
func (f *JobFunctionFactory) WithName(name string) *models.JobFunction {
	jf := f.Create()
	jf.Name = name
	return jf
}

// WithProductivityRate sets a custom productivity rate for the job function
func (f *JobFunctionFactory) WithProductivityRate(rate float64) *models.JobFunction {
	jf := f.Create()
	jf.ProductivityRate = &rate
	return jf
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test day shift with standard break windows
func (f *ShiftFactory) Create() *models.Shift {
	b1s, b1e := "07:45", "08:15"
	b2s, b2e := "09:45", "10:15"
	ls, le := "12:30", "13:00"
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Day Shift",
		StartTime:   "06:00",
		EndTime:     "14:30",
		Break1Start: &b1s,
		Break1End:   &b1e,
		Break2Start: &b2s,
		Break2End:   &b2e,
		LunchStart:  &ls,
		LunchEnd:    &le,
		IsActive:    true,
	}
}

// WithTimes sets custom start and end times with no break windows
func (f *ShiftFactory) WithTimes(name, start, end string) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      name,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

// AssignmentFactory provides methods to create test ScheduleAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test assignment for the given employee, job function and
// shift on the given date
func (f *AssignmentFactory) Create(employeeID, jobFunctionID, shiftID uuid.UUID, date time.Time) *models.ScheduleAssignment {
	return &models.ScheduleAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:    employeeID,
		JobFunctionID: jobFunctionID,
		ShiftID:       shiftID,
		ScheduleDate:  date,
		StartTime:     "09:00",
		EndTime:       "12:00",
	}
}

// WithTimes sets custom start and end times for the assignment
func (f *AssignmentFactory) WithTimes(employeeID, jobFunctionID, shiftID uuid.UUID, date time.Time, start, end string) *models.ScheduleAssignment {
	assignment := f.Create(employeeID, jobFunctionID, shiftID, date)
	assignment.StartTime = start
	assignment.EndTime = end
	return assignment
}

// DailyTargetFactory provides methods to create test DailyTarget data
type DailyTargetFactory struct{}

// NewDailyTargetFactory creates a new DailyTargetFactory
func NewDailyTargetFactory() *DailyTargetFactory {
	return &DailyTargetFactory{}
}

// Create creates a test daily target for the given job function and date
func (f *DailyTargetFactory) Create(jobFunctionID uuid.UUID, date time.Time, units float64) *models.DailyTarget {
	return &models.DailyTarget{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		JobFunctionID: jobFunctionID,
		ScheduleDate:  date,
		TargetUnits:   units,
	}
}

// PTODayFactory provides methods to create test PTODay data
type PTODayFactory struct{}

// NewPTODayFactory creates a new PTODayFactory
func NewPTODayFactory() *PTODayFactory {
	return &PTODayFactory{}
}

// Create creates a full-day PTO record for the given employee and date
func (f *PTODayFactory) Create(employeeID, teamID uuid.UUID, date time.Time) *models.PTODay {
	return &models.PTODay{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		TeamID:     teamID,
		PTODate:    date,
		PTOType:    models.PTOTypeFullDay,
	}
}

// Partial creates a partial-day PTO record with explicit times
func (f *PTODayFactory) Partial(employeeID, teamID uuid.UUID, date time.Time, start, end string) *models.PTODay {
	pto := f.Create(employeeID, teamID, date)
	pto.PTOType = models.PTOTypePartial
	pto.StartTime = &start
	pto.EndTime = &end
	return pto
}

// ShiftSwapFactory provides methods to create test ShiftSwap data
type ShiftSwapFactory struct{}

// NewShiftSwapFactory creates a new ShiftSwapFactory
func NewShiftSwapFactory() *ShiftSwapFactory {
	return &ShiftSwapFactory{}
}

// Create creates a test shift swap for the given employee and date
func (f *ShiftSwapFactory) Create(employeeID, originalShiftID, swappedShiftID uuid.UUID, date time.Time) *models.ShiftSwap {
	return &models.ShiftSwap{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:      employeeID,
		SwapDate:        date,
		OriginalShiftID: originalShiftID,
		SwappedShiftID:  swappedShiftID,
	}
}

// BusinessRuleFactory provides methods to create test BusinessRule data
type BusinessRuleFactory struct{}

// NewBusinessRuleFactory creates a new BusinessRuleFactory
func NewBusinessRuleFactory() *BusinessRuleFactory {
	return &BusinessRuleFactory{}
}

// Create creates a test business rule with default values
func (f *BusinessRuleFactory) Create(jobFunctionName string) *models.BusinessRule {
	return &models.BusinessRule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		JobFunctionName:  jobFunctionName,
		TimeSlotStart:    "06:00",
		TimeSlotEnd:      "14:30",
		MinStaff:         1,
		BlockSizeMinutes: 15,
		IsActive:         true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team         *TeamFactory
	UserProfile  *UserProfileFactory
	Employee     *EmployeeFactory
	JobFunction  *JobFunctionFactory
	Shift        *ShiftFactory
	Assignment   *AssignmentFactory
	DailyTarget  *DailyTargetFactory
	PTODay       *PTODayFactory
	ShiftSwap    *ShiftSwapFactory
	BusinessRule *BusinessRuleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:         NewTeamFactory(),
		UserProfile:  NewUserProfileFactory(),
		Employee:     NewEmployeeFactory(),
		JobFunction:  NewJobFunctionFactory(),
		Shift:        NewShiftFactory(),
		Assignment:   NewAssignmentFactory(),
		DailyTarget:  NewDailyTargetFactory(),
		PTODay:       NewPTODayFactory(),
		ShiftSwap:    NewShiftSwapFactory(),
		BusinessRule: NewBusinessRuleFactory(),
	}
}

// CreateScheduleFixture creates a team with one employee, job function and
// shift, the minimum graph needed to persist an assignment
func (fs *FactorySet) CreateScheduleFixture() (*models.Team, *models.Employee, *models.JobFunction, *models.Shift) {
	team := fs.Team.Create()
	employee := fs.Employee.WithTeam(team.ID)
	jf := fs.JobFunction.Create()
	shift := fs.Shift.Create()
	return team, employee, jf, shift
}
