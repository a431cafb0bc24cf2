package models

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPlanned    ProjectStatus = "planned"
)

// Category is a portfolio project category.
type Category struct {
	ID       int64  `json:"id"`
	NameFa   string `json:"name_fa"`
	NameEn   string `json:"name_en"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// Project is a portfolio project as served by /portfolio/projects/.
type Project struct {
	ID                 int64         `json:"id"`
	TitleFa            string        `json:"title_fa"`
	TitleEn            string        `json:"title_en"`
	Slug               string        `json:"slug"`
	DescriptionFa      string        `json:"description_fa,omitempty"`
	DescriptionEn      string        `json:"description_en,omitempty"`
	ShortDescriptionFa string        `json:"short_description_fa,omitempty"`
	ShortDescriptionEn string        `json:"short_description_en,omitempty"`
	Category           *Category     `json:"category,omitempty"`
	FeaturedImage      string        `json:"featured_image,omitempty"`
	Gallery            []string      `json:"gallery,omitempty"`
	ClientName         string        `json:"client_name,omitempty"`
	ProjectURL         string        `json:"project_url,omitempty"`
	GitHubURL          string        `json:"github_url,omitempty"`
	Technologies       []string      `json:"technologies,omitempty"`
	FeaturesFa         []string      `json:"features_fa,omitempty"`
	FeaturesEn         []string      `json:"features_en,omitempty"`
	Status             ProjectStatus `json:"status"`
	StartDate          string        `json:"start_date,omitempty"`
	CompletionDate     string        `json:"completion_date,omitempty"`
	IsFeatured         bool          `json:"is_featured"`
	Order              int           `json:"order"`
	ViewsCount         int           `json:"views_count"`
	CreatedAt          string        `json:"created_at,omitempty"`
}

// Testimonial is a client testimonial attached to a project.
type Testimonial struct {
	ID             int64  `json:"id"`
	ClientName     string `json:"client_name"`
	ClientPosition string `json:"client_position,omitempty"`
	ClientCompany  string `json:"client_company,omitempty"`
	ClientPhoto    string `json:"client_photo,omitempty"`
	ContentFa      string `json:"content_fa"`
	ContentEn      string `json:"content_en"`
	Rating         int    `json:"rating"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// PortfolioStats is the aggregate from GET /portfolio/stats/.
type PortfolioStats struct {
	TotalProjects      int `json:"total_projects"`
	CompletedProjects  int `json:"completed_projects"`
	InProgressProjects int `json:"in_progress_projects"`
	FeaturedProjects   int `json:"featured_projects"`
	CategoriesCount    int `json:"categories_count"`
}
