package routes

import (
	"shiftboard-backend/internal/api/handlers"
	"shiftboard-backend/internal/api/middleware"
	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/config"
	"shiftboard-backend/internal/logger"
	"shiftboard-backend/internal/repository"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	jobFunctionRepo := repository.NewJobFunctionRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	trainingRepo := repository.NewTrainingRecordRepository(db)
	targetRepo := repository.NewDailyTargetRepository(db)
	ptoRepo := repository.NewPTODayRepository(db)
	swapRepo := repository.NewShiftSwapRepository(db)
	ruleRepo := repository.NewBusinessRuleRepository(db)
	prefRepo := repository.NewPreferredAssignmentRepository(db)
	cleanupLogRepo := repository.NewCleanupLogRepository(db)
	userRepo := repository.NewUserProfileRepository(db)

	// Services
	teamService := service.NewTeamService(teamRepo, validate)
	employeeService := service.NewEmployeeService(employeeRepo, teamRepo, trainingRepo, validate)
	jobFunctionService := service.NewJobFunctionService(jobFunctionRepo, validate)
	shiftService := service.NewShiftService(shiftRepo, validate)
	scheduleService := service.NewScheduleService(
		assignmentRepo, employeeRepo, jobFunctionRepo, shiftRepo, trainingRepo,
		validate, cfg.GridStartHour, cfg.GridEndHour,
	)
	staffingService := service.NewStaffingService(assignmentRepo, jobFunctionRepo, targetRepo, validate)
	ptoService := service.NewPTOService(ptoRepo, employeeRepo, validate)
	swapService := service.NewShiftSwapService(swapRepo, employeeRepo, shiftRepo, validate)
	ruleService := service.NewBusinessRuleService(ruleRepo, validate)
	prefService := service.NewPreferredAssignmentService(prefRepo, employeeRepo, jobFunctionRepo, validate)
	cleanupService := service.NewCleanupService(
		assignmentRepo, cleanupLogRepo,
		cfg.RetentionDays, cfg.RetentionMinDays, cfg.ExportOnCleanup, "archives",
	)

	// Auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		logger.New().WithField("error", err.Error()).Warn("failed to load auth config, auth routes disabled")
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			logger.New().WithField("error", err.Error()).Warn("failed to initialize auth service")
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	jobFunctionHandler := handlers.NewJobFunctionHandler(jobFunctionService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	staffingHandler := handlers.NewStaffingHandler(staffingService)
	ptoHandler := handlers.NewPTOHandler(ptoService)
	swapHandler := handlers.NewShiftSwapHandler(swapService)
	ruleHandler := handlers.NewBusinessRuleHandler(ruleService)
	prefHandler := handlers.NewPreferredAssignmentHandler(prefService)
	cleanupHandler := handlers.NewCleanupHandler(cleanupService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes. Login and refresh are rate limited per client IP.
	if authHandler != nil {
		limiter := middleware.NewRateLimiter(cfg)

		authGroup := router.Group("/api/v1/auth")
		{
			authGroup.POST("/login", limiter.Middleware(), authHandler.Login)
			authGroup.POST("/refresh", limiter.Middleware(), authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/validate", authHandler.Validate)
		}
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.GetEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			employees.GET("/:id/training", employeeHandler.GetTraining)
			employees.PUT("/:id/training", employeeHandler.UpdateTraining)
		}

		jobFunctions := v1.Group("/job-functions")
		{
			jobFunctions.GET("", jobFunctionHandler.GetAllJobFunctions)
			jobFunctions.POST("", jobFunctionHandler.CreateJobFunction)
			jobFunctions.GET("/grouped", jobFunctionHandler.GetGroupedCatalog)
			jobFunctions.GET("/:id", jobFunctionHandler.GetJobFunction)
			jobFunctions.PUT("/:id", jobFunctionHandler.UpdateJobFunction)
			jobFunctions.DELETE("/:id", jobFunctionHandler.DeleteJobFunction)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.GetAllShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}

		schedule := v1.Group("/schedule")
		{
			schedule.GET("/slots", scheduleHandler.GetTimeSlots)
			schedule.POST("/validate", scheduleHandler.ValidateAssignment)
			schedule.POST("/assignments", scheduleHandler.CreateAssignment)
			schedule.PUT("/assignments/:id", scheduleHandler.UpdateAssignment)
			schedule.DELETE("/assignments/:id", scheduleHandler.DeleteAssignment)
			schedule.POST("/copy", scheduleHandler.CopyDay)
			schedule.GET("/:date", scheduleHandler.GetDay)
			schedule.DELETE("/:date", scheduleHandler.ClearDay)
		}

		staffing := v1.Group("/staffing")
		{
			staffing.PUT("/targets", staffingHandler.UpsertTarget)
			staffing.GET("/targets/:date", staffingHandler.GetTargets)
			staffing.GET("/summary/:date", staffingHandler.GetSummary)
		}

		pto := v1.Group("/pto")
		{
			pto.POST("", ptoHandler.CreatePTO)
			pto.GET("/day/:date", ptoHandler.GetPTOForDay)
			pto.GET("/employee/:id", ptoHandler.GetPTOForEmployee)
			pto.GET("/:id", ptoHandler.GetPTO)
			pto.PUT("/:id", ptoHandler.UpdatePTO)
			pto.DELETE("/:id", ptoHandler.DeletePTO)
		}

		swaps := v1.Group("/shift-swaps")
		{
			swaps.POST("", swapHandler.UpsertSwap)
			swaps.GET("/:date", swapHandler.GetSwapsForDay)
			swaps.DELETE("/:id", swapHandler.DeleteSwap)
		}

		rules := v1.Group("/business-rules")
		{
			rules.GET("", ruleHandler.GetAllBusinessRules)
			rules.POST("", ruleHandler.CreateBusinessRule)
			rules.GET("/:id", ruleHandler.GetBusinessRule)
			rules.PUT("/:id", ruleHandler.UpdateBusinessRule)
			rules.DELETE("/:id", ruleHandler.DeleteBusinessRule)
		}

		prefs := v1.Group("/preferred-assignments")
		{
			prefs.GET("", prefHandler.GetAllPreferredAssignments)
			prefs.POST("", prefHandler.CreatePreferredAssignment)
			prefs.GET("/employee/:id", prefHandler.GetPreferredAssignmentsForEmployee)
			prefs.PUT("/:id", prefHandler.UpdatePreferredAssignment)
			prefs.DELETE("/:id", prefHandler.DeletePreferredAssignment)
		}

		cleanup := v1.Group("/cleanup")
		if authMiddleware != nil {
			cleanup.Use(authMiddleware.RequireSuperAdmin())
		}
		{
			cleanup.POST("/run", cleanupHandler.RunCleanup)
			cleanup.GET("/logs", cleanupHandler.GetCleanupLogs)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
