package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Owner is the public owner profile.
type Owner struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Bio     string `json:"bio,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

// Blog is a blog post as served by the API.
type Blog struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
	Views       int64     `json:"views"`
	ReadTime    int       `json:"readTime"`
	AuthorID    uint      `json:"authorId"`
	Author      *Owner    `json:"author,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project is a portfolio project as served by the API.
type Project struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Thumbnail    string     `json:"thumbnail,omitempty"`
	Images       []string   `json:"images"`
	LiveURL      string     `json:"liveUrl,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	Technologies []string   `json:"technologies"`
	Category     string     `json:"category"`
	IsFeatured   bool       `json:"isFeatured"`
	Status       string     `json:"status"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Features     []string   `json:"features"`
	Challenges   string     `json:"challenges,omitempty"`
	Learnings    string     `json:"learnings,omitempty"`
	Order        int        `json:"order"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ContactMessage is a contact inbox entry.
type ContactMessage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// List is a paginated collection.
type List[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NameCount is an aggregate bucket, e.g. a category with its post count.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// BlogStats mirrors the blog statistics endpoint.
type BlogStats struct {
	TotalBlogs     int64 `json:"totalBlogs"`
	PublishedBlogs int64 `json:"publishedBlogs"`
	DraftBlogs     int64 `json:"draftBlogs"`
	TotalViews     int64 `json:"totalViews"`
	FeaturedBlogs  int64 `json:"featuredBlogs"`
}

// ProjectStats mirrors the project statistics endpoint.
type ProjectStats struct {
	TotalProjects      int64 `json:"totalProjects"`
	CompletedProjects  int64 `json:"completedProjects"`
	InProgressProjects int64 `json:"inProgressProjects"`
	FeaturedProjects   int64 `json:"featuredProjects"`
}

// ContactStats mirrors the contact inbox statistics endpoint.
type ContactStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}

// Session is the login response.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *Owner `json:"user"`
}

// ListParams are the common list query parameters. Zero values are omitted.
type ListParams struct {
	Page         int
	Limit        int
	Search       string
	Category     string
	Tags         []string
	Technologies []string
	Status       string
	IsPublished  *bool
	IsFeatured   *bool
	IsRead       *bool
	SortBy       string
	SortOrder    string
}

func (p ListParams) encode() string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if len(p.Tags) > 0 {
		q.Set("tags", strings.Join(p.Tags, ","))
	}
	if len(p.Technologies) > 0 {
		q.Set("technologies", strings.Join(p.Technologies, ","))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.IsPublished != nil {
		q.Set("isPublished", strconv.FormatBool(*p.IsPublished))
	}
	if p.IsFeatured != nil {
		q.Set("isFeatured", strconv.FormatBool(*p.IsFeatured))
	}
	if p.IsRead != nil {
		q.Set("isRead", strconv.FormatBool(*p.IsRead))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Login authenticates and stores the returned access token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.tokens.Set(session.AccessToken)
	return &session, nil
}

// RefreshToken exchanges the refresh token cookie for a new access token.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.Post(ctx, "/auth/refresh-token", nil, &out); err != nil {
		return "", err
	}
	c.tokens.Set(out.AccessToken)
	return out.AccessToken, nil
}

// Logout revokes the session server side and drops the held token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Post(ctx, "/auth/logout", nil, nil)
	c.tokens.Clear()
	return err
}

// Profile fetches the owner profile.
func (c *Client) Profile(ctx context.Context) (*Owner, error) {
	var owner Owner
	if err := c.Get(ctx, "/auth/profile", &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// ListBlogs fetches one page of blog posts.
func (c *Client) ListBlogs(ctx context.Context, params ListParams) (*List[Blog], error) {
	var list List[Blog]
	if err := c.Get(ctx, "/blogs"+params.encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBlog fetches a blog post by slug.
func (c *Client) GetBlog(ctx context.Context, slug string) (*Blog, error) {
	var blog Blog
	if err := c.Get(ctx, "/blogs/slug/"+url.PathEscape(slug), &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog creates a blog post. The payload follows the API's blog input.
func (c *Client) CreateBlog(ctx context.Context, payload interface{}) (*Blog, error) {
	var blog Blog
	if err := c.Post(ctx, "/blogs", payload, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog applies a partial update to a blog post.
func (c *Client) UpdateBlog(ctx context.Context, id uint, payload interface{}) (*Blog, error) {
	var blog Blog
	if err := c.Patch(ctx, fmt.Sprintf("/blogs/%d", id), payload, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog deletes a blog post.
func (c *Client) DeleteBlog(ctx context.Context, id uint) error {
	return c.Delete(ctx, fmt.Sprintf("/blogs/%d", id))
}

// BlogStats fetches blog statistics.
func (c *Client) BlogStats(ctx context.Context) (*BlogStats, error) {
	var stats BlogStats
	if err := c.Get(ctx, "/blogs/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListProjects fetches one page of projects.
func (c *Client) ListProjects(ctx context.Context, params ListParams) (*List[Project], error) {
	var list List[Project]
	if err := c.Get(ctx, "/projects"+params.encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProject fetches a project by slug.
func (c *Client) GetProject(ctx context.Context, slug string) (*Project, error) {
	var project Project
	if err := c.Get(ctx, "/projects/slug/"+url.PathEscape(slug), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, payload interface{}) (*Project, error) {
	var project Project
	if err := c.Post(ctx, "/projects", payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update to a project.
func (c *Client) UpdateProject(ctx context.Context, id uint, payload interface{}) (*Project, error) {
	var project Project
	if err := c.Patch(ctx, fmt.Sprintf("/projects/%d", id), payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.Delete(ctx, fmt.Sprintf("/projects/%d", id))
}

// ProjectStats fetches project statistics.
func (c *Client) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	var stats ProjectStats
	if err := c.Get(ctx, "/projects/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListMessages fetches one page of contact messages.
func (c *Client) ListMessages(ctx context.Context, params ListParams) (*List[ContactMessage], error) {
	var list List[ContactMessage]
	if err := c.Get(ctx, "/contact"+params.encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ContactStats fetches contact inbox statistics.
func (c *Client) ContactStats(ctx context.Context) (*ContactStats, error) {
	var stats ContactStats
	if err := c.Get(ctx, "/contact/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
