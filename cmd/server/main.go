package main

import (
	"log"
	"net/http"
	"os"

	"portfolio/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	apierrors "portfolio/internal/errors"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Backend API for a personal portfolio site: blogs, projects, skills, educations, experiences and a contact inbox, with owner authentication.
// @host localhost:5000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.HTTPErrorHandler = apierrors.HTTPErrorHandler(cfg.IsProduction())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ContactMessage{},
			&model.Experience{},
			&model.Education{},
			&model.Skill{},
			&model.Project{},
			&model.Blog{},
			&model.Owner{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Owner{},
		&model.Blog{},
		&model.Project{},
		&model.Skill{},
		&model.Education{},
		&model.Experience{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	educationRepo := repository.NewEducationRepository(gormDB)
	experienceRepo := repository.NewExperienceRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenDays, cfg.RefreshTokenDays)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(ownerRepo, tokenService, tokenStore)
	blogService := service.NewBlogService(blogRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo)
	educationService := service.NewEducationService(educationRepo)
	experienceService := service.NewExperienceService(experienceRepo)
	contactService := service.NewContactService(contactRepo)

	// Register routes
	router.Register(e, cfg, tokenService, tokenStore, ownerRepo, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg),
		Blog:       handler.NewBlogHandler(blogService),
		Project:    handler.NewProjectHandler(projectService),
		Skill:      handler.NewSkillHandler(skillService),
		Education:  handler.NewEducationHandler(educationService),
		Experience: handler.NewExperienceHandler(experienceService),
		Contact:    handler.NewContactHandler(contactService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
