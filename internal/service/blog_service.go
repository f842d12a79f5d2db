package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/slug"
)

const (
	aggregateCacheTTL = time.Minute
	wordsPerMinute    = 200
	excerptLength     = 150
)

// BlogInput is the payload for creating a blog post.
type BlogInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Thumbnail   string   `json:"thumbnail"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
	IsFeatured  bool     `json:"isFeatured"`
	ReadTime    int      `json:"readTime"`
}

// BlogUpdate is a partial update; nil fields are left untouched.
type BlogUpdate struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
	IsFeatured  *bool     `json:"isFeatured"`
}

// BlogService implements the blog resource operations.
type BlogService interface {
	Create(ctx context.Context, authorID uint, input BlogInput) (*model.Blog, error)
	List(ctx context.Context, filter repository.BlogFilter) (*model.ListResult[model.Blog], error)
	GetBySlug(ctx context.Context, slugValue string, incrementView bool) (*model.Blog, error)
	GetByID(ctx context.Context, id uint) (*model.Blog, error)
	Update(ctx context.Context, id uint, update BlogUpdate) (*model.Blog, error)
	Delete(ctx context.Context, id uint) error
	Featured(ctx context.Context, limit int) ([]model.Blog, error)
	Categories(ctx context.Context) ([]model.NameCount, error)
	Tags(ctx context.Context) ([]model.NameCount, error)
	Stats(ctx context.Context) (*model.BlogStats, error)
}

type blogService struct {
	blogs repository.BlogRepository
	cache *cache.Client
}

// NewBlogService creates a new blog service.
func NewBlogService(blogs repository.BlogRepository, cache *cache.Client) BlogService {
	return &blogService{blogs: blogs, cache: cache}
}

func validateBlogInput(input BlogInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return apierrors.BadRequest("Title is required")
	case strings.TrimSpace(input.Content) == "":
		return apierrors.BadRequest("Content is required")
	case strings.TrimSpace(input.Category) == "":
		return apierrors.BadRequest("Category is required")
	case utf8.RuneCountInString(input.Title) < 5:
		return apierrors.BadRequest("Title must be at least 5 characters long")
	case utf8.RuneCountInString(input.Content) < 50:
		return apierrors.BadRequest("Content must be at least 50 characters long")
	}
	return nil
}

// readTime estimates reading minutes at 200 words per minute, minimum 1.
func readTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// excerpt derives a default excerpt from the first 150 characters of content.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength])
}

// uniqueSlug derives a slug from title and disambiguates with a timestamp
// suffix when taken. excludeID skips the record's own row on update.
func (s *blogService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	candidate := slug.Make(title)
	exists, err := s.blogs.SlugExists(ctx, candidate, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		candidate = slug.WithSuffix(candidate)
	}
	return candidate, nil
}

func (s *blogService) Create(ctx context.Context, authorID uint, input BlogInput) (*model.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	slugValue, err := s.uniqueSlug(ctx, input.Title, 0)
	if err != nil {
		return nil, err
	}

	blog := &model.Blog{
		Title:       input.Title,
		Slug:        slugValue,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Thumbnail:   input.Thumbnail,
		Category:    input.Category,
		Tags:        input.Tags,
		IsPublished: input.IsPublished,
		IsFeatured:  input.IsFeatured,
		ReadTime:    input.ReadTime,
		AuthorID:    authorID,
	}
	if blog.Excerpt == "" {
		blog.Excerpt = excerpt(input.Content)
	}
	if blog.ReadTime == 0 {
		blog.ReadTime = readTime(input.Content)
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	// the unique index backs up the check-then-write: on a race, retry once
	// with a fresh suffix
	if err := s.blogs.Create(ctx, blog); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		blog.Slug = slug.WithSuffix(slug.Make(input.Title))
		if err := s.blogs.Create(ctx, blog); err != nil {
			return nil, err
		}
	}

	s.invalidateAggregates(ctx)
	return s.blogs.FindByID(ctx, blog.ID)
}

func (s *blogService) List(ctx context.Context, filter repository.BlogFilter) (*model.ListResult[model.Blog], error) {
	filter.Page, filter.Limit = model.NormalizePage(filter.Page, filter.Limit)
	blogs, total, err := s.blogs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.ListResult[model.Blog]{
		Data:       blogs,
		Pagination: model.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetBySlug fetches one post; public slug fetches also count a view.
func (s *blogService) GetBySlug(ctx context.Context, slugValue string, incrementView bool) (*model.Blog, error) {
	blog, err := s.blogs.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, apierrors.NotFound("Blog not found")
	}
	if incrementView {
		if err := s.blogs.IncrementViews(ctx, slugValue); err == nil {
			blog.Views++
		}
	}
	return blog, nil
}

func (s *blogService) GetByID(ctx context.Context, id uint) (*model.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Blog not found")
	}
	return blog, nil
}

func (s *blogService) Update(ctx context.Context, id uint, update BlogUpdate) (*model.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Blog not found")
	}

	if update.Title != nil && *update.Title != blog.Title {
		slugValue, err := s.uniqueSlug(ctx, *update.Title, id)
		if err != nil {
			return nil, err
		}
		blog.Title = *update.Title
		blog.Slug = slugValue
	}
	if update.Content != nil {
		blog.Content = *update.Content
		blog.ReadTime = readTime(*update.Content)
	}
	if update.Excerpt != nil {
		blog.Excerpt = *update.Excerpt
	}
	if update.Thumbnail != nil {
		blog.Thumbnail = *update.Thumbnail
	}
	if update.Category != nil {
		blog.Category = *update.Category
	}
	if update.Tags != nil {
		blog.Tags = *update.Tags
	}
	if update.IsPublished != nil {
		blog.IsPublished = *update.IsPublished
	}
	if update.IsFeatured != nil {
		blog.IsFeatured = *update.IsFeatured
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		blog.Slug = slug.WithSuffix(slug.Make(blog.Title))
		if err := s.blogs.Update(ctx, blog); err != nil {
			return nil, err
		}
	}

	s.invalidateAggregates(ctx)
	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.blogs.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Blog not found")
	}
	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAggregates(ctx)
	return nil
}

func (s *blogService) Featured(ctx context.Context, limit int) ([]model.Blog, error) {
	if limit < 1 {
		limit = 5
	}
	return s.blogs.Featured(ctx, limit)
}

func (s *blogService) Categories(ctx context.Context) ([]model.NameCount, error) {
	var cached []model.NameCount
	if s.cache.GetJSON(ctx, "blog:categories", &cached) {
		return cached, nil
	}
	categories, err := s.blogs.Categories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "blog:categories", categories, aggregateCacheTTL)
	return categories, nil
}

func (s *blogService) Tags(ctx context.Context) ([]model.NameCount, error) {
	var cached []model.NameCount
	if s.cache.GetJSON(ctx, "blog:tags", &cached) {
		return cached, nil
	}
	tags, err := s.blogs.Tags(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "blog:tags", tags, aggregateCacheTTL)
	return tags, nil
}

func (s *blogService) Stats(ctx context.Context) (*model.BlogStats, error) {
	cached := &model.BlogStats{}
	if s.cache.GetJSON(ctx, "blog:stats", cached) {
		return cached, nil
	}
	stats, err := s.blogs.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "blog:stats", stats, aggregateCacheTTL)
	return stats, nil
}

func (s *blogService) invalidateAggregates(ctx context.Context) {
	_ = s.cache.Delete(ctx, "blog:categories")
	_ = s.cache.Delete(ctx, "blog:tags")
	_ = s.cache.Delete(ctx, "blog:stats")
}
