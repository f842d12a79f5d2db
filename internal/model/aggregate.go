package model

// NameCount is a grouped tally, used for category/tag/technology aggregates.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// BlogStats summarizes the blog collection for the dashboard.
type BlogStats struct {
	TotalBlogs     int64 `json:"totalBlogs"`
	PublishedBlogs int64 `json:"publishedBlogs"`
	DraftBlogs     int64 `json:"draftBlogs"`
	TotalViews     int64 `json:"totalViews"`
	FeaturedBlogs  int64 `json:"featuredBlogs"`
}

// ProjectStats summarizes the project collection for the dashboard.
type ProjectStats struct {
	TotalProjects      int64 `json:"totalProjects"`
	CompletedProjects  int64 `json:"completedProjects"`
	InProgressProjects int64 `json:"inProgressProjects"`
	FeaturedProjects   int64 `json:"featuredProjects"`
}

// ContactStats summarizes the contact inbox.
type ContactStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}
