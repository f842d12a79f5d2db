package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/slug"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Owner{},
		&model.Blog{},
		&model.Project{},
		&model.Skill{},
		&model.Education{},
		&model.Experience{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ownerRepo := repository.NewOwnerRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)

	// Owner account, upserted by email so re-runs are safe
	owner, err := ownerRepo.FindByEmail(ctx, cfg.OwnerEmail)
	if err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), 12)
		if err != nil {
			log.Fatalf("Failed to hash owner password: %v", err)
		}
		owner = &model.Owner{
			Name:         cfg.OwnerName,
			Email:        cfg.OwnerEmail,
			PasswordHash: string(hash),
			Phone:        cfg.OwnerPhone,
			Bio:          cfg.OwnerBio,
			Role:         model.RoleOwner,
		}
		if err := ownerRepo.Create(ctx, owner); err != nil {
			log.Fatalf("Failed to create owner: %v", err)
		}
	}
	log.Printf("Owner ready: %s", owner.Email)

	// Skills, upserted by name
	skills := []model.Skill{
		{Name: "HTML5", Category: model.SkillCategoryFrontend, Level: 95, Color: "orange-500"},
		{Name: "CSS3", Category: model.SkillCategoryFrontend, Level: 92, Color: "blue-500"},
		{Name: "JavaScript", Category: model.SkillCategoryFrontend, Level: 88, Color: "yellow-500"},
		{Name: "TypeScript", Category: model.SkillCategoryFrontend, Level: 82, Color: "blue-600"},
		{Name: "React", Category: model.SkillCategoryFrontend, Level: 90, Color: "cyan-500"},
		{Name: "Next.js", Category: model.SkillCategoryFrontend, Level: 85, Color: "gray-800"},
		{Name: "Tailwind CSS", Category: model.SkillCategoryFrontend, Level: 93, Color: "cyan-400"},
		{Name: "Node.js", Category: model.SkillCategoryBackend, Level: 85, Color: "green-600"},
		{Name: "Go", Category: model.SkillCategoryBackend, Level: 88, Color: "cyan-600"},
		{Name: "RESTful APIs", Category: model.SkillCategoryBackend, Level: 90, Color: "green-500"},
		{Name: "JWT Authentication", Category: model.SkillCategoryBackend, Level: 85, Color: "red-500"},
		{Name: "MySQL", Category: model.SkillCategoryDatabase, Level: 85, Color: "blue-700"},
		{Name: "PostgreSQL", Category: model.SkillCategoryDatabase, Level: 75, Color: "blue-800"},
		{Name: "Redis", Category: model.SkillCategoryDatabase, Level: 80, Color: "red-600"},
		{Name: "Git", Category: model.SkillCategoryTools, Level: 90, Color: "gray-800"},
		{Name: "Docker", Category: model.SkillCategoryTools, Level: 65, Color: "blue-400"},
		{Name: "Figma", Category: model.SkillCategoryDesign, Level: 85, Color: "purple-600"},
	}
	for _, skill := range skills {
		if _, err := skillRepo.FindByName(ctx, skill.Name); err == nil {
			continue
		}
		s := skill
		if err := skillRepo.Create(ctx, &s); err != nil {
			log.Fatalf("Failed to seed skill %s: %v", skill.Name, err)
		}
	}
	log.Println("Skills seeded")

	// Educations, only into an empty table
	var educationCount int64
	if err := gormDB.WithContext(ctx).Model(&model.Education{}).Count(&educationCount).Error; err != nil {
		log.Fatalf("Failed to count educations: %v", err)
	}
	if educationCount == 0 {
		educations := []model.Education{
			{
				Institution: "University",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   date(2025, time.January, 1),
				IsCurrent:   true,
				Description: "Currently pursuing Bachelor of Science in Computer Science.",
				Order:       1,
			},
			{
				Institution: "Technical Institute",
				Degree:      "Diploma",
				Field:       "Computer Science Engineering",
				StartDate:   date(2021, time.January, 1),
				EndDate:     datePtr(2025, time.January, 1),
				Description: "Completed Diploma in CSE with training in programming fundamentals and database systems.",
				Order:       2,
			},
		}
		if err := gormDB.WithContext(ctx).Create(&educations).Error; err != nil {
			log.Fatalf("Failed to seed educations: %v", err)
		}
		log.Println("Educations seeded")
	}

	// Sample projects, only into an empty table
	var projectCount int64
	if err := gormDB.WithContext(ctx).Model(&model.Project{}).Count(&projectCount).Error; err != nil {
		log.Fatalf("Failed to count projects: %v", err)
	}
	if projectCount == 0 {
		projects := []model.Project{
			{
				Title:        "Parcel Delivery System",
				Slug:         slug.Make("Parcel Delivery System"),
				Description:  "A parcel delivery platform with role based dashboards for customers, couriers and admins.",
				Technologies: []string{"React", "Node.js", "MySQL", "Tailwind CSS"},
				Category:     "Web Apps",
				IsFeatured:   true,
				Status:       model.ProjectStatusCompleted,
				StartDate:    datePtr(2024, time.June, 1),
				EndDate:      datePtr(2024, time.September, 1),
				Order:        1,
			},
			{
				Title:        "Portfolio Backend",
				Slug:         slug.Make("Portfolio Backend"),
				Description:  "REST API powering this portfolio site, with JWT authentication and Redis backed caching.",
				Technologies: []string{"Go", "Echo", "MySQL", "Redis"},
				Category:     "APIs",
				IsFeatured:   true,
				Status:       model.ProjectStatusInProgress,
				StartDate:    datePtr(2025, time.March, 1),
				Order:        2,
			},
		}
		if err := gormDB.WithContext(ctx).Create(&projects).Error; err != nil {
			log.Fatalf("Failed to seed projects: %v", err)
		}
		log.Println("Projects seeded")
	}

	log.Println("Seeding completed")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
