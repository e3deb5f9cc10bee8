package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"shiftboard-backend/internal/config"
	"shiftboard-backend/internal/database"
	"shiftboard-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name     string `yaml:"name"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type UserData struct {
	Email        string `yaml:"email"`
	FullName     string `yaml:"full_name"`
	Password     string `yaml:"password"`
	TeamName     string `yaml:"team_name,omitempty"`
	IsSuperAdmin bool   `yaml:"is_super_admin"`
}

type JobFunctionData struct {
	Name             string   `yaml:"name"`
	ColorCode        string   `yaml:"color_code,omitempty"`
	ProductivityRate *float64 `yaml:"productivity_rate,omitempty"`
	UnitOfMeasure    string   `yaml:"unit_of_measure,omitempty"`
	SortOrder        int      `yaml:"sort_order"`
}

type ShiftData struct {
	Name        string  `yaml:"name"`
	StartTime   string  `yaml:"start_time"`
	EndTime     string  `yaml:"end_time"`
	Break1Start *string `yaml:"break_1_start,omitempty"`
	Break1End   *string `yaml:"break_1_end,omitempty"`
	Break2Start *string `yaml:"break_2_start,omitempty"`
	Break2End   *string `yaml:"break_2_end,omitempty"`
	LunchStart  *string `yaml:"lunch_start,omitempty"`
	LunchEnd    *string `yaml:"lunch_end,omitempty"`
}

type EmployeeData struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	TeamName  string   `yaml:"team_name"`
	TrainedOn []string `yaml:"trained_on,omitempty"`
	IsActive  *bool    `yaml:"is_active,omitempty"`
}

type BusinessRuleData struct {
	JobFunctionName  string  `yaml:"job_function_name"`
	TimeSlotStart    string  `yaml:"time_slot_start"`
	TimeSlotEnd      string  `yaml:"time_slot_end"`
	MinStaff         int     `yaml:"min_staff"`
	MaxStaff         *int    `yaml:"max_staff,omitempty"`
	BlockSizeMinutes int     `yaml:"block_size_minutes,omitempty"`
	Priority         int     `yaml:"priority"`
	Notes            string  `yaml:"notes,omitempty"`
	FanOutEnabled    bool    `yaml:"fan_out_enabled"`
	FanOutPrefix     *string `yaml:"fan_out_prefix,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type JobFunctionsFile struct {
	JobFunctions []JobFunctionData `yaml:"job_functions"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type BusinessRulesFile struct {
	BusinessRules []BusinessRuleData `yaml:"business_rules"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var jobFunctionsFile JobFunctionsFile
	if err := readYAML(filepath.Join(dataDir, "job_functions.yaml"), &jobFunctionsFile); err != nil {
		return fmt.Errorf("failed to load job functions: %w", err)
	}

	var shiftsFile ShiftsFile
	if err := readYAML(filepath.Join(dataDir, "shifts.yaml"), &shiftsFile); err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	var employeesFile EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &employeesFile); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	var rulesFile BusinessRulesFile
	if err := readYAML(filepath.Join(dataDir, "business_rules.yaml"), &rulesFile); err != nil {
		return fmt.Errorf("failed to load business rules: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teamsFile.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

	// Create users
	userCreated := 0
	for _, userData := range usersFile.Users {
		_, created, err := createUser(db, userData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(usersFile.Users))

	// Create job functions
	jfMap := make(map[string]*models.JobFunction)
	jfCreated := 0
	for _, jfData := range jobFunctionsFile.JobFunctions {
		jf, created, err := createJobFunction(db, jfData)
		if err != nil {
			return fmt.Errorf("failed to create job function %s: %w", jfData.Name, err)
		}
		jfMap[jfData.Name] = jf
		if created {
			jfCreated++
		}
	}
	log.Printf("📋 Job functions: %d created, %d total", jfCreated, len(jobFunctionsFile.JobFunctions))

	// Create shifts
	shiftCreated := 0
	for _, shiftData := range shiftsFile.Shifts {
		_, created, err := createShift(db, shiftData)
		if err != nil {
			return fmt.Errorf("failed to create shift %s: %w", shiftData.Name, err)
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shiftsFile.Shifts))

	// Create employees with their training records
	employeeCreated := 0
	for _, employeeData := range employeesFile.Employees {
		_, created, err := createEmployee(db, employeeData, teamMap, jfMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create employee %s %s: %v",
				employeeData.FirstName, employeeData.LastName, err)
			continue // Continue with other employees
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employeesFile.Employees))

	// Create business rules
	ruleCreated := 0
	for _, ruleData := range rulesFile.BusinessRules {
		created, err := createBusinessRule(db, ruleData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create business rule for %s: %v",
				ruleData.JobFunctionName, err)
			continue
		}
		if created {
			ruleCreated++
		}
	}
	log.Printf("📋 Business rules: %d created, %d total", ruleCreated, len(rulesFile.BusinessRules))

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	team := &models.Team{Name: data.Name, IsActive: true}
	if data.IsActive != nil {
		team.IsActive = *data.IsActive
	}
	if err := db.Create(team).Error; err != nil {
		return nil, false, err
	}
	return team, true, nil
}

func createUser(db *gorm.DB, data UserData, teamMap map[string]*models.Team) (*models.UserProfile, bool, error) {
	var existing models.UserProfile
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &models.UserProfile{
		Email:        data.Email,
		FullName:     data.FullName,
		PasswordHash: string(hash),
		IsSuperAdmin: data.IsSuperAdmin,
	}
	if data.TeamName != "" {
		team, ok := teamMap[data.TeamName]
		if !ok {
			return nil, false, fmt.Errorf("unknown team %q", data.TeamName)
		}
		user.TeamID = &team.ID
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createJobFunction(db *gorm.DB, data JobFunctionData) (*models.JobFunction, bool, error) {
	var existing models.JobFunction
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	jf := &models.JobFunction{
		Name:             data.Name,
		ColorCode:        data.ColorCode,
		ProductivityRate: data.ProductivityRate,
		UnitOfMeasure:    data.UnitOfMeasure,
		IsActive:         true,
		SortOrder:        data.SortOrder,
	}
	if err := db.Create(jf).Error; err != nil {
		return nil, false, err
	}
	return jf, true, nil
}

func createShift(db *gorm.DB, data ShiftData) (*models.Shift, bool, error) {
	var existing models.Shift
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	shift := &models.Shift{
		Name:        data.Name,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Break1Start: data.Break1Start,
		Break1End:   data.Break1End,
		Break2Start: data.Break2Start,
		Break2End:   data.Break2End,
		LunchStart:  data.LunchStart,
		LunchEnd:    data.LunchEnd,
		IsActive:    true,
	}
	if err := db.Create(shift).Error; err != nil {
		return nil, false, err
	}
	return shift, true, nil
}

func createEmployee(db *gorm.DB, data EmployeeData, teamMap map[string]*models.Team, jfMap map[string]*models.JobFunction) (*models.Employee, bool, error) {
	team, ok := teamMap[data.TeamName]
	if !ok {
		return nil, false, fmt.Errorf("unknown team %q", data.TeamName)
	}

	var existing models.Employee
	err := db.Where("team_id = ? AND first_name = ? AND last_name = ?",
		team.ID, data.FirstName, data.LastName).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	employee := &models.Employee{
		TeamID:    team.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  true,
	}
	if data.IsActive != nil {
		employee.IsActive = *data.IsActive
	}
	if err := db.Create(employee).Error; err != nil {
		return nil, false, err
	}

	for _, jfName := range data.TrainedOn {
		jf, ok := jfMap[jfName]
		if !ok {
			return nil, false, fmt.Errorf("unknown job function %q", jfName)
		}
		record := &models.TrainingRecord{
			EmployeeID:    employee.ID,
			JobFunctionID: jf.ID,
		}
		if err := db.Create(record).Error; err != nil {
			return nil, false, err
		}
	}

	return employee, true, nil
}

func createBusinessRule(db *gorm.DB, data BusinessRuleData) (bool, error) {
	var existing models.BusinessRule
	err := db.Where("job_function_name = ? AND time_slot_start = ? AND time_slot_end = ?",
		data.JobFunctionName, data.TimeSlotStart, data.TimeSlotEnd).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	blockSize := data.BlockSizeMinutes
	if blockSize == 0 {
		blockSize = 15
	}
	rule := &models.BusinessRule{
		JobFunctionName:  data.JobFunctionName,
		TimeSlotStart:    data.TimeSlotStart,
		TimeSlotEnd:      data.TimeSlotEnd,
		MinStaff:         data.MinStaff,
		MaxStaff:         data.MaxStaff,
		BlockSizeMinutes: blockSize,
		Priority:         data.Priority,
		IsActive:         true,
		Notes:            data.Notes,
		FanOutEnabled:    data.FanOutEnabled,
		FanOutPrefix:     data.FanOutPrefix,
	}
	if err := db.Create(rule).Error; err != nil {
		return false, err
	}
	return true, nil
}
