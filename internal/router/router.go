package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/repository"
)

// Handlers bundles the HTTP handlers wired by Register.
type Handlers struct {
	Auth       *handler.AuthHandler
	Blog       *handler.BlogHandler
	Project    *handler.ProjectHandler
	Skill      *handler.SkillHandler
	Education  *handler.EducationHandler
	Experience *handler.ExperienceHandler
	Contact    *handler.ContactHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	tokenStore auth.TokenStoreInterface,
	owners repository.OwnerRepository,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Portfolio API is running"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Owner-only middleware chain
	authenticated := []echo.MiddlewareFunc{
		auth.Authenticate(tokens),
		auth.LoadIdentity(tokenStore, owners),
	}
	ownerOnly := append(append([]echo.MiddlewareFunc{}, authenticated...), auth.RequireOwner)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh-token", h.Auth.Refresh)
	authGroup.POST("/logout", h.Auth.Logout, ownerOnly...)
	authGroup.POST("/change-password", h.Auth.ChangePassword, ownerOnly...)
	authGroup.GET("/profile", h.Auth.GetProfile, ownerOnly...)
	authGroup.PATCH("/profile", h.Auth.UpdateProfile, ownerOnly...)

	// Blog routes
	blogs := api.Group("/blogs")
	blogs.GET("", h.Blog.List)
	blogs.GET("/featured", h.Blog.Featured)
	blogs.GET("/categories", h.Blog.Categories)
	blogs.GET("/tags", h.Blog.Tags)
	blogs.GET("/slug/:slug", h.Blog.GetBySlug)
	blogs.POST("", h.Blog.Create, ownerOnly...)
	blogs.GET("/stats", h.Blog.Stats, ownerOnly...)
	blogs.GET("/:id", h.Blog.GetByID, ownerOnly...)
	blogs.PATCH("/:id", h.Blog.Update, ownerOnly...)
	blogs.DELETE("/:id", h.Blog.Delete, ownerOnly...)

	// Project routes
	projects := api.Group("/projects")
	projects.GET("", h.Project.List)
	projects.GET("/featured", h.Project.Featured)
	projects.GET("/categories", h.Project.Categories)
	projects.GET("/technologies", h.Project.Technologies)
	projects.GET("/slug/:slug", h.Project.GetBySlug)
	projects.POST("", h.Project.Create, ownerOnly...)
	projects.GET("/stats", h.Project.Stats, ownerOnly...)
	projects.GET("/:id", h.Project.GetByID, ownerOnly...)
	projects.PATCH("/:id", h.Project.Update, ownerOnly...)
	projects.DELETE("/:id", h.Project.Delete, ownerOnly...)

	// Skill routes
	skills := api.Group("/skills")
	skills.GET("", h.Skill.List)
	skills.GET("/by-category", h.Skill.ByCategory)
	skills.POST("", h.Skill.Create, ownerOnly...)
	skills.PATCH("/:id", h.Skill.Update, ownerOnly...)
	skills.DELETE("/:id", h.Skill.Delete, ownerOnly...)

	// Education routes
	educations := api.Group("/educations")
	educations.GET("", h.Education.List)
	educations.GET("/:id", h.Education.GetByID)
	educations.POST("", h.Education.Create, ownerOnly...)
	educations.PATCH("/:id", h.Education.Update, ownerOnly...)
	educations.DELETE("/:id", h.Education.Delete, ownerOnly...)

	// Experience routes
	experiences := api.Group("/experiences")
	experiences.GET("", h.Experience.List)
	experiences.GET("/:id", h.Experience.GetByID)
	experiences.POST("", h.Experience.Create, ownerOnly...)
	experiences.PATCH("/:id", h.Experience.Update, ownerOnly...)
	experiences.DELETE("/:id", h.Experience.Delete, ownerOnly...)

	// Contact routes
	contact := api.Group("/contact")
	contact.POST("", h.Contact.Create)
	contact.GET("", h.Contact.List, ownerOnly...)
	contact.GET("/stats", h.Contact.Stats, ownerOnly...)
	contact.GET("/:id", h.Contact.GetByID, ownerOnly...)
	contact.PATCH("/:id/read", h.Contact.MarkAsRead, ownerOnly...)
	contact.DELETE("/:id", h.Contact.Delete, ownerOnly...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
