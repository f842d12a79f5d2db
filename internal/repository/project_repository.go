package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ProjectFilter is the request-scoped query filter for project listings.
type ProjectFilter struct {
	Page         int
	Limit        int
	Search       string
	Category     string
	Technologies []string
	Status       model.ProjectStatus
	IsFeatured   *bool
	SortBy       string
	SortOrder    string
}

var projectSortColumns = map[string]string{
	"createdAt": "created_at",
	"order":     "display_order",
	"title":     "title",
}

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Project, error)
	FindBySlug(ctx context.Context, slug string) (*model.Project, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, int64, error)
	Featured(ctx context.Context, limit int) ([]model.Project, error)
	Categories(ctx context.Context) ([]model.NameCount, error)
	Technologies(ctx context.Context) ([]model.NameCount, error)
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository builds a GORM-backed repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Project{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *projectRepository) filtered(ctx context.Context, filter ProjectFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Project{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(r.db.Where("title LIKE ?", like).Or("description LIKE ?", like))
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if len(filter.Technologies) > 0 {
		cond := r.db.Where("JSON_CONTAINS(technologies, JSON_QUOTE(?))", filter.Technologies[0])
		for _, tech := range filter.Technologies[1:] {
			cond = cond.Or("JSON_CONTAINS(technologies, JSON_QUOTE(?))", tech)
		}
		q = q.Where(cond)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	return q
}

// List returns one page of projects plus the total match count, fetched in
// parallel.
func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]model.Project, int64, error) {
	var (
		projects []model.Project
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order(orderClause(projectSortColumns, filter.SortBy, filter.SortOrder, "display_order ASC")).
			Limit(filter.Limit).
			Offset((filter.Page - 1) * filter.Limit).
			Find(&projects).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepository) Featured(ctx context.Context, limit int) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("display_order ASC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Categories(ctx context.Context) ([]model.NameCount, error) {
	var out []model.NameCount
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Scan(&out).Error
	return out, err
}

func (r *projectRepository) Technologies(ctx context.Context) ([]model.NameCount, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Select("technologies").Find(&projects).Error; err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, project := range projects {
		for _, tech := range project.Technologies {
			counts[tech]++
		}
	}
	return sortedCounts(counts), nil
}

func (r *projectRepository) Stats(ctx context.Context) (*model.ProjectStats, error) {
	stats := &model.ProjectStats{}
	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, conds ...interface{}) func() error {
		return func() error {
			q := r.db.WithContext(gctx).Model(&model.Project{})
			if len(conds) > 0 {
				q = q.Where(conds[0], conds[1:]...)
			}
			return q.Count(dst).Error
		}
	}
	g.Go(count(&stats.TotalProjects))
	g.Go(count(&stats.CompletedProjects, "status = ?", model.ProjectStatusCompleted))
	g.Go(count(&stats.InProgressProjects, "status = ?", model.ProjectStatusInProgress))
	g.Go(count(&stats.FeaturedProjects, "is_featured = ?", true))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
