package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mohammadmehrani/CAD/internal/models"
)

// ProjectFilter narrows a project listing. Zero values mean "no filter".
type ProjectFilter struct {
	Category string
	Status   models.ProjectStatus
	Featured bool
	Tech     string
	Search   string
}

func (f *ProjectFilter) query() url.Values {
	if f == nil {
		return nil
	}
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Featured {
		q.Set("featured", strconv.FormatBool(true))
	}
	if f.Tech != "" {
		q.Set("tech", f.Tech)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// Categories fetches the portfolio categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/portfolio/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Projects fetches projects, optionally filtered.
func (c *Client) Projects(ctx context.Context, filter *ProjectFilter) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/portfolio/projects/", filter.query(), &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FeaturedProjects fetches the featured selection for the home page.
func (c *Client) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/portfolio/projects/featured/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches one project by slug. A missing slug yields a normalized
// 404 that callers render as an in-page not-found state.
func (c *Client) Project(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := c.get(ctx, fmt.Sprintf("/portfolio/projects/%s/", slug), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// RelatedProjects fetches projects related to the given slug.
func (c *Client) RelatedProjects(ctx context.Context, slug string) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, fmt.Sprintf("/portfolio/projects/%s/related/", slug), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectTestimonials fetches the testimonials for a project.
func (c *Client) ProjectTestimonials(ctx context.Context, slug string) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := c.get(ctx, fmt.Sprintf("/portfolio/projects/%s/testimonials/", slug), nil, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// PortfolioStats fetches the portfolio aggregates.
func (c *Client) PortfolioStats(ctx context.Context) (*models.PortfolioStats, error) {
	var stats models.PortfolioStats
	if err := c.get(ctx, "/portfolio/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Admin CRUD for categories and projects.

func (c *Client) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.post(ctx, "/portfolio/admin/categories/", category, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, slug string, patch map[string]any) (*models.Category, error) {
	var out models.Category
	if err := c.patch(ctx, fmt.Sprintf("/portfolio/admin/categories/%s/", slug), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, slug string) error {
	return c.delete(ctx, fmt.Sprintf("/portfolio/admin/categories/%s/", slug))
}

func (c *Client) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	var out models.Project
	if err := c.post(ctx, "/portfolio/admin/projects/", project, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, patch map[string]any) (*models.Project, error) {
	var out models.Project
	if err := c.patch(ctx, fmt.Sprintf("/portfolio/admin/projects/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/portfolio/admin/projects/%d/", id))
}

func (c *Client) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	var out models.Testimonial
	if err := c.post(ctx, "/portfolio/admin/testimonials/", testimonial, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id int64, patch map[string]any) (*models.Testimonial, error) {
	var out models.Testimonial
	if err := c.patch(ctx, fmt.Sprintf("/portfolio/admin/testimonials/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/portfolio/admin/testimonials/%d/", id))
}
