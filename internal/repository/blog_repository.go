package repository

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// BlogFilter is the request-scoped query filter for blog listings. All
// conditions are conjunctive; Search OR-matches across title, content and
// excerpt.
type BlogFilter struct {
	Page        int
	Limit       int
	Search      string
	Category    string
	Tags        []string
	IsPublished *bool
	IsFeatured  *bool
	SortBy      string
	SortOrder   string
}

// blogSortColumns whitelists sortable fields to their column names.
var blogSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"title":     "title",
}

// BlogRepository defines blog persistence operations.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	IncrementViews(ctx context.Context, slug string) error
	List(ctx context.Context, filter BlogFilter) ([]model.Blog, int64, error)
	Featured(ctx context.Context, limit int) ([]model.Blog, error)
	Categories(ctx context.Context) ([]model.NameCount, error)
	Tags(ctx context.Context) ([]model.NameCount, error)
	Stats(ctx context.Context) (*model.BlogStats, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository builds a GORM-backed repository.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// authorSelect limits the preloaded author to its public-safe projection.
func authorSelect(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "picture", "bio")
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) Update(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Blog{}, id).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uint) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).Preload("Author", authorSelect).First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).Preload("Author", authorSelect).
		Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *blogRepository) filtered(ctx context.Context, filter BlogFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Blog{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		// LIKE is case-insensitive under the default utf8mb4 collation
		q = q.Where(r.db.Where("title LIKE ?", like).
			Or("content LIKE ?", like).
			Or("excerpt LIKE ?", like))
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if len(filter.Tags) > 0 {
		cond := r.db.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", filter.Tags[0])
		for _, tag := range filter.Tags[1:] {
			cond = cond.Or("JSON_CONTAINS(tags, JSON_QUOTE(?))", tag)
		}
		q = q.Where(cond)
	}
	if filter.IsPublished != nil {
		q = q.Where("is_published = ?", *filter.IsPublished)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	return q
}

// List returns one page of blogs plus the total match count. The count and
// the page fetch run in parallel.
func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]model.Blog, int64, error) {
	var (
		blogs []model.Blog
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order(orderClause(blogSortColumns, filter.SortBy, filter.SortOrder, "created_at DESC")).
			Limit(filter.Limit).
			Offset((filter.Page - 1) * filter.Limit).
			Preload("Author", authorSelect).
			Find(&blogs).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *blogRepository) Featured(ctx context.Context, limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("views DESC").
		Limit(limit).
		Preload("Author", authorSelect).
		Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) Categories(ctx context.Context) ([]model.NameCount, error) {
	var out []model.NameCount
	err := r.db.WithContext(ctx).Model(&model.Blog{}).
		Select("category AS name, COUNT(*) AS count").
		Where("is_published = ?", true).
		Group("category").
		Scan(&out).Error
	return out, err
}

// Tags tallies tag usage across published blogs. The tally happens in Go
// because the tags live in a JSON column; record counts are portfolio-scale.
func (r *blogRepository) Tags(ctx context.Context) ([]model.NameCount, error) {
	var blogs []model.Blog
	if err := r.db.WithContext(ctx).Select("tags").
		Where("is_published = ?", true).Find(&blogs).Error; err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, blog := range blogs {
		for _, tag := range blog.Tags {
			counts[tag]++
		}
	}
	return sortedCounts(counts), nil
}

func (r *blogRepository) Stats(ctx context.Context) (*model.BlogStats, error) {
	stats := &model.BlogStats{}
	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, conds ...interface{}) func() error {
		return func() error {
			q := r.db.WithContext(gctx).Model(&model.Blog{})
			if len(conds) > 0 {
				q = q.Where(conds[0], conds[1:]...)
			}
			return q.Count(dst).Error
		}
	}
	g.Go(count(&stats.TotalBlogs))
	g.Go(count(&stats.PublishedBlogs, "is_published = ?", true))
	g.Go(count(&stats.DraftBlogs, "is_published = ?", false))
	g.Go(count(&stats.FeaturedBlogs, "is_featured = ? AND is_published = ?", true, true))
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.Blog{}).
			Select("COALESCE(SUM(views), 0)").Scan(&stats.TotalViews).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// orderClause maps a whitelisted sort field and direction to an ORDER BY
// clause, falling back when the field is unknown.
func orderClause(columns map[string]string, sortBy, sortOrder, fallback string) string {
	col, ok := columns[sortBy]
	if !ok {
		return fallback
	}
	dir := "DESC"
	if sortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

// sortedCounts converts a tally map into NameCounts ordered by count
// descending, name ascending on ties.
func sortedCounts(counts map[string]int64) []model.NameCount {
	out := make([]model.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, model.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
