package routes

import (
	"shift-planning-backend/internal/api/handlers"
	"shift-planning-backend/internal/api/middleware"
	"shift-planning-backend/internal/config"
	"shift-planning-backend/internal/repository"
	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	agentRepo := repository.NewAgentRepository(db)
	functionRepo := repository.NewFunctionRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	scheduleTypeRepo := repository.NewScheduleTypeRepository(db)
	rotationPlanRepo := repository.NewRotationPlanRepository(db)
	shiftScheduleRepo := repository.NewShiftScheduleRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	publicHolidayRepo := repository.NewPublicHolidayRepository(db)

	// Initialize services
	agentService := service.NewAgentService(agentRepo, validator)
	functionService := service.NewFunctionService(functionRepo, validator)
	teamService := service.NewTeamService(teamRepo, departmentRepo, functionRepo, validator)
	scheduleTypeService := service.NewScheduleTypeService(scheduleTypeRepo, validator)
	rotationPlanService := service.NewRotationPlanService(rotationPlanRepo, scheduleTypeRepo, validator)
	shiftScheduleService := service.NewShiftScheduleService(shiftScheduleRepo, rotationPlanRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, teamRepo, agentRepo, rotationPlanRepo, validator)
	publicHolidayService := service.NewPublicHolidayService(publicHolidayRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	agentHandler := handlers.NewAgentHandler(agentService)
	functionHandler := handlers.NewFunctionHandler(functionService)
	teamHandler := handlers.NewTeamHandler(teamService)
	scheduleTypeHandler := handlers.NewScheduleTypeHandler(scheduleTypeService)
	rotationPlanHandler := handlers.NewRotationPlanHandler(rotationPlanService)
	shiftScheduleHandler := handlers.NewShiftScheduleHandler(shiftScheduleService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	publicHolidayHandler := handlers.NewPublicHolidayHandler(publicHolidayService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Agent routes
		agents := v1.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
			agents.PUT("/:id", agentHandler.UpdateAgent)
			agents.DELETE("/:id", agentHandler.DeleteAgent)
			agents.GET("/by-matricule/:matricule", agentHandler.GetAgentByMatricule)
		}

		// Function routes
		functions := v1.Group("/functions")
		{
			functions.GET("", functionHandler.ListFunctions)
			functions.POST("", functionHandler.CreateFunction)
			functions.GET("/:id", functionHandler.GetFunction)
			functions.PUT("/:id", functionHandler.UpdateFunction)
			functions.DELETE("/:id", functionHandler.DeleteFunction)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", teamHandler.ListDepartments)
			departments.POST("", teamHandler.CreateDepartment)
			departments.GET("/:id", teamHandler.GetDepartment)
			departments.PUT("/:id", teamHandler.UpdateDepartment)
			departments.DELETE("/:id", teamHandler.DeleteDepartment)
			departments.GET("/:id/teams", teamHandler.ListTeamsByDepartment)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/positions", teamHandler.ListPositions)
			teams.POST("/:id/positions", teamHandler.CreatePosition)
		}

		// Team position routes
		positions := v1.Group("/positions")
		{
			positions.PUT("/:id", teamHandler.UpdatePosition)
			positions.DELETE("/:id", teamHandler.DeletePosition)
			positions.GET("/:id/agent-assignments", assignmentHandler.ListAgentAssignments)
			positions.POST("/:id/agent-assignments", assignmentHandler.CreateAgentAssignment)
			positions.GET("/:id/agent-assignments/current", assignmentHandler.GetCurrentAgentAssignment)
			positions.GET("/:id/rotation-assignments", assignmentHandler.ListRotationAssignments)
			positions.POST("/:id/rotation-assignments", assignmentHandler.CreateRotationAssignment)
			positions.GET("/:id/rotation-assignments/current", assignmentHandler.GetCurrentRotationAssignment)
		}

		// Assignment routes
		agentAssignments := v1.Group("/agent-assignments")
		{
			agentAssignments.PUT("/:id", assignmentHandler.UpdateAgentAssignment)
			agentAssignments.DELETE("/:id", assignmentHandler.DeleteAgentAssignment)
		}
		rotationAssignments := v1.Group("/rotation-assignments")
		{
			rotationAssignments.PUT("/:id", assignmentHandler.UpdateRotationAssignment)
			rotationAssignments.DELETE("/:id", assignmentHandler.DeleteRotationAssignment)
		}

		// Schedule type routes
		scheduleTypes := v1.Group("/schedule-types")
		{
			scheduleTypes.GET("", scheduleTypeHandler.ListScheduleTypes)
			scheduleTypes.POST("", scheduleTypeHandler.CreateScheduleType)
			scheduleTypes.GET("/:id", scheduleTypeHandler.GetScheduleType)
			scheduleTypes.PUT("/:id", scheduleTypeHandler.UpdateScheduleType)
			scheduleTypes.DELETE("/:id", scheduleTypeHandler.DeleteScheduleType)
		}

		// Daily rotation plan routes
		rotationPlans := v1.Group("/rotation-plans")
		{
			rotationPlans.GET("", rotationPlanHandler.ListPlans)
			rotationPlans.POST("", rotationPlanHandler.CreatePlan)
			rotationPlans.GET("/:id", rotationPlanHandler.GetPlan)
			rotationPlans.PUT("/:id", rotationPlanHandler.UpdatePlan)
			rotationPlans.DELETE("/:id", rotationPlanHandler.DeletePlan)
			rotationPlans.POST("/:id/periods", rotationPlanHandler.CreatePeriod)
		}
		rotationPeriods := v1.Group("/rotation-periods")
		{
			rotationPeriods.PUT("/:id", rotationPlanHandler.UpdatePeriod)
			rotationPeriods.DELETE("/:id", rotationPlanHandler.DeletePeriod)
		}

		// Shift schedule hierarchy routes
		shiftSchedules := v1.Group("/shift-schedules")
		{
			shiftSchedules.GET("", shiftScheduleHandler.ListSchedules)
			shiftSchedules.POST("", shiftScheduleHandler.CreateSchedule)
			shiftSchedules.GET("/:id", shiftScheduleHandler.GetSchedule)
			shiftSchedules.PUT("/:id", shiftScheduleHandler.UpdateSchedule)
			shiftSchedules.DELETE("/:id", shiftScheduleHandler.DeleteSchedule)
			shiftSchedules.POST("/:id/periods", shiftScheduleHandler.CreatePeriod)
		}
		schedulePeriods := v1.Group("/schedule-periods")
		{
			schedulePeriods.PUT("/:id", shiftScheduleHandler.UpdatePeriod)
			schedulePeriods.DELETE("/:id", shiftScheduleHandler.DeletePeriod)
			schedulePeriods.POST("/:id/duplicate", shiftScheduleHandler.DuplicatePeriod)
			schedulePeriods.GET("/:id/weeks", shiftScheduleHandler.ListWeeks)
			schedulePeriods.POST("/:id/weeks", shiftScheduleHandler.CreateWeek)
		}
		scheduleWeeks := v1.Group("/schedule-weeks")
		{
			scheduleWeeks.GET("/:id", shiftScheduleHandler.GetWeek)
			scheduleWeeks.DELETE("/:id", shiftScheduleHandler.DeleteWeek)
			scheduleWeeks.POST("/:id/duplicate", shiftScheduleHandler.DuplicateWeek)
			scheduleWeeks.PUT("/:id/daily-plans", shiftScheduleHandler.AssignDailyPlan)
		}

		// Public holiday routes
		publicHolidays := v1.Group("/public-holidays")
		{
			publicHolidays.GET("", publicHolidayHandler.ListHolidays)
			publicHolidays.POST("", publicHolidayHandler.CreateHoliday)
			publicHolidays.GET("/:id", publicHolidayHandler.GetHoliday)
			publicHolidays.PUT("/:id", publicHolidayHandler.UpdateHoliday)
			publicHolidays.DELETE("/:id", publicHolidayHandler.DeleteHoliday)
		}
	}

	return router
}
