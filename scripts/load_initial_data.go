package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shift-planning-backend/internal/config"
	"shift-planning-backend/internal/database"
	"shift-planning-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ScheduleTypeData struct {
	Designation      string `yaml:"designation"`
	ShortDesignation string `yaml:"short_designation"`
	Color            string `yaml:"color"`
}

type FunctionData struct {
	Designation string `yaml:"designation"`
	Description string `yaml:"description"`
	Status      *bool  `yaml:"status,omitempty"`
}

type DepartmentData struct {
	Designation string   `yaml:"designation"`
	Description string   `yaml:"description"`
	Teams       []string `yaml:"teams,omitempty"`
}

type AgentData struct {
	Matricule       string `yaml:"matricule"`
	FirstName       string `yaml:"first_name"`
	LastName        string `yaml:"last_name"`
	Grade           string `yaml:"grade"`
	PermissionLevel int    `yaml:"permission_level"`
	HireDate        string `yaml:"hire_date,omitempty"`
}

type PublicHolidayData struct {
	Designation string `yaml:"designation"`
	Date        string `yaml:"date"`
}

// File structures
type ScheduleTypesFile struct {
	ScheduleTypes []ScheduleTypeData `yaml:"schedule_types"`
}

type FunctionsFile struct {
	Functions []FunctionData `yaml:"functions"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type AgentsFile struct {
	Agents []AgentData `yaml:"agents"`
}

type PublicHolidaysFile struct {
	PublicHolidays []PublicHolidayData `yaml:"public_holidays"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	scheduleTypes, err := loadScheduleTypes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load schedule types: %w", err)
	}

	functions, err := loadFunctions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load functions: %w", err)
	}

	departments, err := loadDepartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	agents, err := loadAgents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	holidays, err := loadPublicHolidays(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load public holidays: %w", err)
	}

	scheduleTypeCreated := 0
	for _, data := range scheduleTypes {
		created, err := createScheduleType(db, data)
		if err != nil {
			return fmt.Errorf("failed to create schedule type %s: %w", data.Designation, err)
		}
		if created {
			scheduleTypeCreated++
		}
	}
	log.Printf("Schedule types: %d created, %d total", scheduleTypeCreated, len(scheduleTypes))

	functionCreated := 0
	for _, data := range functions {
		created, err := createFunction(db, data)
		if err != nil {
			return fmt.Errorf("failed to create function %s: %w", data.Designation, err)
		}
		if created {
			functionCreated++
		}
	}
	log.Printf("Functions: %d created, %d total", functionCreated, len(functions))

	departmentCreated := 0
	teamCreated := 0
	for _, data := range departments {
		createdDepartment, createdTeams, err := createDepartment(db, data)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", data.Designation, err)
		}
		if createdDepartment {
			departmentCreated++
		}
		teamCreated += createdTeams
	}
	log.Printf("Departments: %d created, %d total", departmentCreated, len(departments))
	log.Printf("Teams: %d created", teamCreated)

	agentCreated := 0
	for _, data := range agents {
		created, err := createAgent(db, data)
		if err != nil {
			// Bad rows in hand-maintained seed files should not stop the run
			log.Printf("Warning: failed to create agent %s: %v", data.Matricule, err)
			continue
		}
		if created {
			agentCreated++
		}
	}
	log.Printf("Agents: %d created, %d total", agentCreated, len(agents))

	holidayCreated := 0
	for _, data := range holidays {
		created, err := createPublicHoliday(db, data)
		if err != nil {
			log.Printf("Warning: failed to create public holiday %s: %v", data.Designation, err)
			continue
		}
		if created {
			holidayCreated++
		}
	}
	log.Printf("Public holidays: %d created, %d total", holidayCreated, len(holidays))

	return nil
}

func loadScheduleTypes(dataDir string) ([]ScheduleTypeData, error) {
	var all []ScheduleTypeData

	err := walkYAMLFiles(dataDir, "schedule_types", func(data []byte) error {
		var file ScheduleTypesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.ScheduleTypes...)
		return nil
	})

	return all, err
}

func loadFunctions(dataDir string) ([]FunctionData, error) {
	var all []FunctionData

	err := walkYAMLFiles(dataDir, "functions", func(data []byte) error {
		var file FunctionsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Functions...)
		return nil
	})

	return all, err
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var all []DepartmentData

	err := walkYAMLFiles(dataDir, "departments", func(data []byte) error {
		var file DepartmentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Departments...)
		return nil
	})

	return all, err
}

func loadAgents(dataDir string) ([]AgentData, error) {
	var all []AgentData

	err := walkYAMLFiles(dataDir, "agents", func(data []byte) error {
		var file AgentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Agents...)
		return nil
	})

	return all, err
}

func loadPublicHolidays(dataDir string) ([]PublicHolidayData, error) {
	var all []PublicHolidayData

	err := walkYAMLFiles(dataDir, "public_holidays", func(data []byte) error {
		var file PublicHolidaysFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.PublicHolidays...)
		return nil
	})

	return all, err
}

// walkYAMLFiles calls handle for every .yaml file under dataDir whose path
// contains the given marker
func walkYAMLFiles(dataDir, marker string, handle func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, marker) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createScheduleType(db *gorm.DB, data ScheduleTypeData) (bool, error) {
	var existing models.ScheduleType
	if err := db.Where("designation = ?", data.Designation).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			scheduleType := models.ScheduleType{
				Designation:      data.Designation,
				ShortDesignation: data.ShortDesignation,
				Color:            data.Color,
			}
			if err := db.Create(&scheduleType).Error; err != nil {
				return false, fmt.Errorf("failed to create schedule type: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query schedule type: %w", err)
	}

	return false, nil
}

func createFunction(db *gorm.DB, data FunctionData) (bool, error) {
	var existing models.Function
	if err := db.Where("designation = ?", data.Designation).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := true
			if data.Status != nil {
				status = *data.Status
			}
			function := models.Function{
				Designation: data.Designation,
				Description: data.Description,
				Status:      status,
			}
			if err := db.Create(&function).Error; err != nil {
				return false, fmt.Errorf("failed to create function: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query function: %w", err)
	}

	return false, nil
}

func createDepartment(db *gorm.DB, data DepartmentData) (bool, int, error) {
	createdDepartment := false

	var department models.Department
	if err := db.Where("designation = ?", data.Designation).First(&department).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, 0, fmt.Errorf("failed to query department: %w", err)
		}
		department = models.Department{
			Designation: data.Designation,
			Description: data.Description,
		}
		if err := db.Create(&department).Error; err != nil {
			return false, 0, fmt.Errorf("failed to create department: %w", err)
		}
		createdDepartment = true
	}

	createdTeams := 0
	for _, teamName := range data.Teams {
		var team models.Team
		err := db.Where("designation = ? AND department_id = ?", teamName, department.ID).First(&team).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return createdDepartment, createdTeams, fmt.Errorf("failed to query team: %w", err)
		}
		team = models.Team{
			DepartmentID: department.ID,
			Designation:  teamName,
		}
		if err := db.Create(&team).Error; err != nil {
			return createdDepartment, createdTeams, fmt.Errorf("failed to create team %s: %w", teamName, err)
		}
		createdTeams++
	}

	return createdDepartment, createdTeams, nil
}

func createAgent(db *gorm.DB, data AgentData) (bool, error) {
	var existing models.Agent
	if err := db.Where("matricule = ?", data.Matricule).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			grade := models.Grade(data.Grade)
			if !grade.IsValid() {
				return false, fmt.Errorf("unknown grade %q", data.Grade)
			}
			level := models.PermissionLevel(data.PermissionLevel)
			if !level.IsValid() {
				return false, fmt.Errorf("unknown permission level %d", data.PermissionLevel)
			}

			agent := models.Agent{
				Matricule:       data.Matricule,
				FirstName:       data.FirstName,
				LastName:        data.LastName,
				Grade:           grade,
				PermissionLevel: level,
			}
			if data.HireDate != "" {
				hireDate, err := time.Parse("2006-01-02", data.HireDate)
				if err != nil {
					return false, fmt.Errorf("invalid hire date %q: %w", data.HireDate, err)
				}
				agent.HireDate = &hireDate
			}

			if err := db.Create(&agent).Error; err != nil {
				return false, fmt.Errorf("failed to create agent: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query agent: %w", err)
	}

	return false, nil
}

func createPublicHoliday(db *gorm.DB, data PublicHolidayData) (bool, error) {
	date, err := time.Parse("2006-01-02", data.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", data.Date, err)
	}

	var existing models.PublicHoliday
	if err := db.Where("date = ?", date).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			holiday := models.PublicHoliday{
				Designation: data.Designation,
				Date:        date,
			}
			if err := db.Create(&holiday).Error; err != nil {
				return false, fmt.Errorf("failed to create public holiday: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query public holiday: %w", err)
	}

	return false, nil
}
