package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/slug"
)

// ProjectInput is the payload for creating a project.
type ProjectInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnail    string     `json:"thumbnail"`
	Images       []string   `json:"images"`
	LiveURL      string     `json:"liveUrl"`
	GithubURL    string     `json:"githubUrl"`
	Technologies []string   `json:"technologies"`
	Category     string     `json:"category"`
	IsFeatured   bool       `json:"isFeatured"`
	Status       string     `json:"status"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Features     []string   `json:"features"`
	Challenges   string     `json:"challenges"`
	Learnings    string     `json:"learnings"`
	Order        int        `json:"order"`
}

// ProjectUpdate is a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Thumbnail    *string    `json:"thumbnail"`
	Images       *[]string  `json:"images"`
	LiveURL      *string    `json:"liveUrl"`
	GithubURL    *string    `json:"githubUrl"`
	Technologies *[]string  `json:"technologies"`
	Category     *string    `json:"category"`
	IsFeatured   *bool      `json:"isFeatured"`
	Status       *string    `json:"status"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Features     *[]string  `json:"features"`
	Challenges   *string    `json:"challenges"`
	Learnings    *string    `json:"learnings"`
	Order        *int       `json:"order"`
}

// ProjectService implements the project resource operations.
type ProjectService interface {
	Create(ctx context.Context, input ProjectInput) (*model.Project, error)
	List(ctx context.Context, filter repository.ProjectFilter) (*model.ListResult[model.Project], error)
	GetBySlug(ctx context.Context, slugValue string) (*model.Project, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	Update(ctx context.Context, id uint, update ProjectUpdate) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
	Featured(ctx context.Context, limit int) ([]model.Project, error)
	Categories(ctx context.Context) ([]model.NameCount, error)
	Technologies(ctx context.Context) ([]model.NameCount, error)
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

type projectService struct {
	projects repository.ProjectRepository
	cache    *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(projects repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{projects: projects, cache: cache}
}

func validateProjectInput(input ProjectInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return apierrors.BadRequest("Title is required")
	case strings.TrimSpace(input.Description) == "":
		return apierrors.BadRequest("Description is required")
	case strings.TrimSpace(input.Category) == "":
		return apierrors.BadRequest("Category is required")
	case len(input.Technologies) == 0:
		return apierrors.BadRequest("At least one technology is required")
	}
	return nil
}

func (s *projectService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	candidate := slug.Make(title)
	exists, err := s.projects.SlugExists(ctx, candidate, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		candidate = slug.WithSuffix(candidate)
	}
	return candidate, nil
}

func (s *projectService) Create(ctx context.Context, input ProjectInput) (*model.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	status := model.ProjectStatus(input.Status)
	if input.Status == "" {
		status = model.ProjectStatusCompleted
	} else if !status.Valid() {
		return nil, apierrors.BadRequest("Status must be one of: COMPLETED, IN_PROGRESS, PLANNED")
	}

	slugValue, err := s.uniqueSlug(ctx, input.Title, 0)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:        input.Title,
		Slug:         slugValue,
		Description:  input.Description,
		Thumbnail:    input.Thumbnail,
		Images:       input.Images,
		LiveURL:      input.LiveURL,
		GithubURL:    input.GithubURL,
		Technologies: input.Technologies,
		Category:     input.Category,
		IsFeatured:   input.IsFeatured,
		Status:       status,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Features:     input.Features,
		Challenges:   input.Challenges,
		Learnings:    input.Learnings,
		Order:        input.Order,
	}
	if project.Images == nil {
		project.Images = []string{}
	}
	if project.Features == nil {
		project.Features = []string{}
	}

	if err := s.projects.Create(ctx, project); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		project.Slug = slug.WithSuffix(slug.Make(input.Title))
		if err := s.projects.Create(ctx, project); err != nil {
			return nil, err
		}
	}

	s.invalidateAggregates(ctx)
	return project, nil
}

func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter) (*model.ListResult[model.Project], error) {
	filter.Page, filter.Limit = model.NormalizePage(filter.Page, filter.Limit)
	projects, total, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.ListResult[model.Project]{
		Data:       projects,
		Pagination: model.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *projectService) GetBySlug(ctx context.Context, slugValue string) (*model.Project, error) {
	project, err := s.projects.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, apierrors.NotFound("Project not found")
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Project not found")
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uint, update ProjectUpdate) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Project not found")
	}

	if update.Title != nil && *update.Title != project.Title {
		slugValue, err := s.uniqueSlug(ctx, *update.Title, id)
		if err != nil {
			return nil, err
		}
		project.Title = *update.Title
		project.Slug = slugValue
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Thumbnail != nil {
		project.Thumbnail = *update.Thumbnail
	}
	if update.Images != nil {
		project.Images = *update.Images
	}
	if update.LiveURL != nil {
		project.LiveURL = *update.LiveURL
	}
	if update.GithubURL != nil {
		project.GithubURL = *update.GithubURL
	}
	if update.Technologies != nil {
		project.Technologies = *update.Technologies
	}
	if update.Category != nil {
		project.Category = *update.Category
	}
	if update.IsFeatured != nil {
		project.IsFeatured = *update.IsFeatured
	}
	if update.Status != nil {
		status := model.ProjectStatus(*update.Status)
		if !status.Valid() {
			return nil, apierrors.BadRequest("Status must be one of: COMPLETED, IN_PROGRESS, PLANNED")
		}
		project.Status = status
	}
	if update.StartDate != nil {
		project.StartDate = update.StartDate
	}
	if update.EndDate != nil {
		project.EndDate = update.EndDate
	}
	if update.Features != nil {
		project.Features = *update.Features
	}
	if update.Challenges != nil {
		project.Challenges = *update.Challenges
	}
	if update.Learnings != nil {
		project.Learnings = *update.Learnings
	}
	if update.Order != nil {
		project.Order = *update.Order
	}

	if err := s.projects.Update(ctx, project); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		project.Slug = slug.WithSuffix(slug.Make(project.Title))
		if err := s.projects.Update(ctx, project); err != nil {
			return nil, err
		}
	}

	s.invalidateAggregates(ctx)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Project not found")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAggregates(ctx)
	return nil
}

func (s *projectService) Featured(ctx context.Context, limit int) ([]model.Project, error) {
	if limit < 1 {
		limit = 6
	}
	return s.projects.Featured(ctx, limit)
}

func (s *projectService) Categories(ctx context.Context) ([]model.NameCount, error) {
	var cached []model.NameCount
	if s.cache.GetJSON(ctx, "project:categories", &cached) {
		return cached, nil
	}
	categories, err := s.projects.Categories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "project:categories", categories, aggregateCacheTTL)
	return categories, nil
}

func (s *projectService) Technologies(ctx context.Context) ([]model.NameCount, error) {
	var cached []model.NameCount
	if s.cache.GetJSON(ctx, "project:technologies", &cached) {
		return cached, nil
	}
	technologies, err := s.projects.Technologies(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "project:technologies", technologies, aggregateCacheTTL)
	return technologies, nil
}

func (s *projectService) Stats(ctx context.Context) (*model.ProjectStats, error) {
	cached := &model.ProjectStats{}
	if s.cache.GetJSON(ctx, "project:stats", cached) {
		return cached, nil
	}
	stats, err := s.projects.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "project:stats", stats, aggregateCacheTTL)
	return stats, nil
}

func (s *projectService) invalidateAggregates(ctx context.Context) {
	_ = s.cache.Delete(ctx, "project:categories")
	_ = s.cache.Delete(ctx, "project:technologies")
	_ = s.cache.Delete(ctx, "project:stats")
}
